package port

import (
	"context"

	"fundhub/internal/core/domain"
)

// DonationStore defines donation persistence.
type DonationStore interface {
	// CreateAndCollect inserts the donation and increments the campaign's
	// collected amount by donation.Amount in one transaction. The increment
	// must be a single conditional UPDATE so concurrent donations to the
	// same campaign never lose updates.
	CreateAndCollect(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	// GetByID returns nil without error when no donation exists.
	GetByID(ctx context.Context, id string) (*domain.Donation, error)
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Donation, error)
	ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error)
	// ClearMessage nulls the message of a donation only when it belongs to
	// donorID, returning the number of rows affected.
	ClearMessage(ctx context.Context, donationID, donorID string) (int64, error)
}
