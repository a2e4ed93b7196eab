package port

import (
	"context"

	"fundhub/internal/core/domain"
)

// CampaignStore defines campaign persistence. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe: a
// campaign's collected amount and status are contended by concurrent
// donations, so status writes go through conditional updates rather than
// read-modify-write.
type CampaignStore interface {
	// Create inserts a campaign and returns it with generated fields
	// (id, timestamps) populated.
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	// GetByID returns nil without error when no campaign exists.
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error)
	// UpdateStatusFrom moves the campaign from one status to another as a
	// single compare-and-swap. It returns the updated campaign, or nil when
	// the campaign is missing or its status no longer matches from.
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.CampaignStatus) (*domain.Campaign, error)
	// SetEvidence records the evidence URL and upload timestamp for a
	// campaign owned by ownerID. Returns nil when no row matched.
	SetEvidence(ctx context.Context, id int64, ownerID, evidenceURL string) (*domain.Campaign, error)
	// Delete removes a campaign owned by ownerID and returns the number of
	// rows affected.
	Delete(ctx context.Context, id int64, ownerID string) (int64, error)
}
