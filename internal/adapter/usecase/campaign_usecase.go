package usecase

import (
	"context"
	"strings"
	"time"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
)

// CampaignUseCase implements fundraiser-facing campaign management. Review
// decisions live in ReviewUseCase; this type never changes a campaign's
// lifecycle state except by creating it pending.
type CampaignUseCase struct {
	campaigns port.CampaignStore
}

// NewCampaignUseCase creates a new usecase over the given store.
func NewCampaignUseCase(campaigns port.CampaignStore) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns}
}

// CreateCampaign validates and stores a new campaign in pending
// verification.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignRequest) (domain.Campaign, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Campaign{}, domain.Validationf("Campaign name is required")
	}
	if req.TargetAmount <= 0 {
		return domain.Campaign{}, domain.Validationf("Target amount must be positive")
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}
	end := req.EndDate
	if end.IsZero() {
		end = start.AddDate(0, 3, 0)
	}
	if !end.After(start) {
		return domain.Campaign{}, domain.Validationf("End date must be after start date")
	}

	return u.campaigns.Create(ctx, domain.Campaign{
		OwnerID:      req.OwnerID,
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Status:       domain.StatusPending,
		StartDate:    start,
		EndDate:      end,
	})
}

// GetCampaign returns one campaign or NotFound.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	if campaign == nil {
		return domain.Campaign{}, domain.NotFoundf("Campaign not found")
	}
	return *campaign, nil
}

// CampaignsByOwner lists the caller's campaigns.
func (u *CampaignUseCase) CampaignsByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	return u.campaigns.ListByOwner(ctx, ownerID)
}

// CampaignsByStatus lists campaigns in one lifecycle state.
func (u *CampaignUseCase) CampaignsByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	if !status.Valid() {
		return nil, domain.Validationf("Unknown campaign status %q", string(status))
	}
	return u.campaigns.ListByStatus(ctx, status)
}

// UploadEvidence records the fund-usage evidence URL on the caller's own
// campaign.
func (u *CampaignUseCase) UploadEvidence(ctx context.Context, ownerID string, campaignID int64, evidenceURL string) (domain.Campaign, error) {
	if strings.TrimSpace(evidenceURL) == "" {
		return domain.Campaign{}, domain.Validationf("Evidence URL cannot be empty")
	}

	updated, err := u.campaigns.SetEvidence(ctx, campaignID, ownerID, evidenceURL)
	if err != nil {
		return domain.Campaign{}, err
	}
	if updated != nil {
		return *updated, nil
	}

	campaign, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if campaign == nil {
		return domain.Campaign{}, domain.NotFoundf("Campaign not found")
	}
	return domain.Campaign{}, domain.Forbiddenf("You don't have permission to upload evidence for this campaign")
}

// DeleteCampaign removes the caller's own campaign. Campaigns that ever went
// live stay on record: only pending or rejected ones may go away.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, ownerID string, campaignID int64) error {
	campaign, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return domain.NotFoundf("Campaign not found")
	}
	if campaign.OwnerID != ownerID {
		return domain.Forbiddenf("You don't have permission to delete this campaign")
	}
	if campaign.Status != domain.StatusPending && campaign.Status != domain.StatusRejected {
		return domain.InvalidOperationf("This campaign cannot be deleted at this time")
	}

	rows, err := u.campaigns.Delete(ctx, campaignID, ownerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("Campaign not found or already deleted")
	}
	return nil
}
