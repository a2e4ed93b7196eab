package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
)

// DonationUseCase implements the donation workflow: validate, move money,
// record the donation atomically with the campaign's progress, detect goal
// completion and trigger fan-out.
type DonationUseCase struct {
	donations  port.DonationStore
	campaigns  port.CampaignStore
	gateway    port.PaymentGateway
	dispatcher port.Dispatcher
	logger     *slog.Logger
}

// NewDonationUseCase creates a new usecase over the given ports.
func NewDonationUseCase(
	donations port.DonationStore,
	campaigns port.CampaignStore,
	gateway port.PaymentGateway,
	dispatcher port.Dispatcher,
	logger *slog.Logger,
) *DonationUseCase {
	return &DonationUseCase{
		donations:  donations,
		campaigns:  campaigns,
		gateway:    gateway,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// MakeDonation records a donation against an active campaign. The donation
// row and the collected-amount increment commit in one transaction. After
// commit it re-checks campaign progress: reaching the target completes the
// campaign through a conditional status update, so under concurrent
// donations exactly one caller emits the completion notification pair.
func (u *DonationUseCase) MakeDonation(ctx context.Context, req port.MakeDonationRequest) (domain.Donation, error) {
	if req.Amount <= 0 {
		return domain.Donation{}, domain.Validationf("Donation amount must be positive")
	}

	campaign, err := u.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return domain.Donation{}, err
	}
	if campaign == nil {
		return domain.Donation{}, domain.NotFoundf("Campaign not found")
	}
	if campaign.Status != domain.StatusActive {
		return domain.Donation{}, domain.InvalidOperationf("Campaign is not accepting donations")
	}

	if err = u.gateway.Pay(ctx, req.Amount, campaign.OwnerID); err != nil {
		return domain.Donation{}, fmt.Errorf("payment failed: %w", err)
	}

	donation := domain.Donation{
		ID:         uuid.NewString(),
		DonorID:    req.DonorID,
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Message:    req.Message,
	}
	donation, err = u.donations.CreateAndCollect(ctx, donation)
	if err != nil {
		return domain.Donation{}, err
	}

	u.completeIfFunded(ctx, req.CampaignID)

	// Best-effort note to the fundraiser; never fails the donation.
	u.dispatcher.Dispatch(port.PushNotificationRequest{
		Title:      "New donation received",
		Content:    fmt.Sprintf("Your campaign %q received a new donation.", campaign.Name),
		TargetType: domain.TargetSpecificUser,
		TargetUser: campaign.OwnerID,
	})

	return donation, nil
}

// completeIfFunded re-reads the campaign after the donation committed and,
// when the target is reached, attempts the Active -> Completed transition as
// a compare-and-swap. Losing the swap means a concurrent donation already
// completed the campaign; that is a silent no-op so the completion
// notification pair is emitted at most once. Errors here are logged only:
// the donation itself is already durable.
func (u *DonationUseCase) completeIfFunded(ctx context.Context, campaignID int64) {
	campaign, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		u.logger.Error("completion check failed", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return
	}
	if campaign == nil || campaign.Status != domain.StatusActive || campaign.CollectedAmount < campaign.TargetAmount {
		return
	}

	next, err := domain.Transition(campaign.Status, domain.ActionComplete)
	if err != nil {
		return
	}
	updated, err := u.campaigns.UpdateStatusFrom(ctx, campaignID, campaign.Status, next)
	if err != nil {
		u.logger.Error("campaign completion failed", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return
	}
	if updated == nil {
		// Another donation won the race; it owns the notifications.
		return
	}

	content := fmt.Sprintf("Campaign %q reached its target of %d.", updated.Name, updated.TargetAmount)
	u.dispatcher.Dispatch(port.PushNotificationRequest{
		Title:          "Campaign completed",
		Content:        content,
		TargetType:     domain.TargetFundraisers,
		TargetCampaign: campaignID,
	})
	u.dispatcher.Dispatch(port.PushNotificationRequest{
		Title:          "Campaign completed",
		Content:        content,
		TargetType:     domain.TargetDonors,
		TargetCampaign: campaignID,
	})
}

// DeleteDonationMessage clears the message of the caller's own donation. The
// ownership check happens inside the conditional update; a zero row count is
// disambiguated afterwards into NotFound or Forbidden.
func (u *DonationUseCase) DeleteDonationMessage(ctx context.Context, donationID, userID string) error {
	rows, err := u.donations.ClearMessage(ctx, donationID, userID)
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	donation, err := u.donations.GetByID(ctx, donationID)
	if err != nil {
		return err
	}
	if donation == nil {
		return domain.NotFoundf("Donation not found")
	}
	return domain.Forbiddenf("You cannot delete this donation message")
}

// DonationsByCampaign lists donations made to a campaign.
func (u *DonationUseCase) DonationsByCampaign(ctx context.Context, campaignID int64) ([]domain.Donation, error) {
	return u.donations.ListByCampaign(ctx, campaignID)
}

// DonationsByDonor lists the donor's own donations.
func (u *DonationUseCase) DonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	return u.donations.ListByDonor(ctx, donorID)
}
