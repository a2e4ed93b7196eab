package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundhub/internal/core/domain"
)

// DonationRepository implements port.DonationStore using pgxpool for
// PostgreSQL.
type DonationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository returns a new repository instance.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

const donationColumns = `id, donor_id, campaign_id, amount, message, created_at`

func scanDonation(row pgx.Row) (domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(&d.ID, &d.DonorID, &d.CampaignID, &d.Amount, &d.Message, &d.CreatedAt)
	return d, err
}

// CreateAndCollect inserts the donation row and increments the campaign's
// collected amount in one transaction. The increment is a single conditional
// UPDATE so the database linearizes concurrent donations to the same
// campaign; application code never reads the old value first.
func (r *DonationRepository) CreateAndCollect(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Donation{}, domain.StorageError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE campaigns SET collected_amount = collected_amount + $1, updated_at = now() WHERE id = $2`,
		donation.Amount, donation.CampaignID)
	if err != nil {
		return domain.Donation{}, domain.StorageError(err)
	}
	if tag.RowsAffected() == 0 {
		err = domain.NotFoundf("Campaign not found")
		return domain.Donation{}, err
	}

	donation.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `INSERT INTO donations (id, donor_id, campaign_id, amount, message, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		donation.ID, donation.DonorID, donation.CampaignID, donation.Amount, donation.Message, donation.CreatedAt)
	if err != nil {
		return domain.Donation{}, domain.StorageError(err)
	}
	return donation, nil
}

// GetByID returns a donation by id, or nil when absent.
func (r *DonationRepository) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+donationColumns+` FROM donations WHERE id = $1`, id)
	d, err := scanDonation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return &d, nil
}

// ListByCampaign returns donations to a campaign, newest first.
func (r *DonationRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+donationColumns+` FROM donations WHERE campaign_id = $1 ORDER BY created_at DESC`, campaignID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return collectDonations(rows)
}

// ListByDonor returns a donor's donations, newest first.
func (r *DonationRepository) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+donationColumns+` FROM donations WHERE donor_id = $1 ORDER BY created_at DESC`, donorID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return collectDonations(rows)
}

func collectDonations(rows pgx.Rows) ([]domain.Donation, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Donation, error) {
		return scanDonation(row)
	})
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

// ClearMessage nulls the donation message, but only for the donor who wrote
// it. The ownership check lives in the WHERE clause so the caller can
// distinguish "missing" from "not yours" by the affected row count.
func (r *DonationRepository) ClearMessage(ctx context.Context, donationID, donorID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE donations SET message = NULL WHERE id = $1 AND donor_id = $2`, donationID, donorID)
	if err != nil {
		return 0, domain.StorageError(err)
	}
	return tag.RowsAffected(), nil
}
