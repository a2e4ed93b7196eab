package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundhub/internal/core/domain"
)

// CampaignRepository implements port.CampaignStore using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, owner_id, name, description, target_amount, collected_amount, status, start_date, end_date, evidence_url, evidence_uploaded_at, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Description,
		&c.TargetAmount,
		&c.CollectedAmount,
		&c.Status,
		&c.StartDate,
		&c.EndDate,
		&c.EvidenceURL,
		&c.EvidenceUploadedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// Create inserts the campaign and returns it with generated fields populated.
func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (owner_id, name, description, target_amount, collected_amount, status, start_date, end_date, created_at, updated_at)
VALUES ($1,$2,$3,$4,0,$5,$6,$7,now(),now())
RETURNING `+campaignColumns,
		campaign.OwnerID, campaign.Name, campaign.Description, campaign.TargetAmount,
		campaign.Status, campaign.StartDate, campaign.EndDate)
	c, err := scanCampaign(row)
	if err != nil {
		return domain.Campaign{}, domain.StorageError(err)
	}
	return c, nil
}

// GetByID returns a campaign by id, or nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return &c, nil
}

// ListByOwner returns all campaigns created by ownerID, newest first.
func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return collectCampaigns(rows)
}

// ListByStatus returns all campaigns in the given lifecycle state.
func (r *CampaignRepository) ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE status = $1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return collectCampaigns(rows)
}

func collectCampaigns(rows pgx.Rows) ([]domain.Campaign, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

// UpdateStatusFrom performs the status transition as a compare-and-swap: the
// update only applies while the stored status still equals from. It returns
// nil when no row matched, which callers use to detect both a missing
// campaign and a lost race.
func (r *CampaignRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.CampaignStatus) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2
RETURNING `+campaignColumns, id, from, to)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return &c, nil
}

// SetEvidence stamps the evidence URL and upload time on the owner's
// campaign. Returns nil when the campaign is missing or owned by someone
// else.
func (r *CampaignRepository) SetEvidence(ctx context.Context, id int64, ownerID, evidenceURL string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET evidence_url = $3, evidence_uploaded_at = now(), updated_at = now()
WHERE id = $1 AND owner_id = $2
RETURNING `+campaignColumns, id, ownerID, evidenceURL)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return &c, nil
}

// Delete removes the owner's campaign and reports how many rows went away.
func (r *CampaignRepository) Delete(ctx context.Context, id int64, ownerID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return 0, domain.StorageError(err)
	}
	return tag.RowsAffected(), nil
}
