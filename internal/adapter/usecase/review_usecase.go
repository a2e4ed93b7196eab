package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
)

// ReviewUseCase applies admin review decisions to a campaign's lifecycle.
// Transitions come from the pure state machine; the persisted update is
// conditional on the status the decision was made against, and the matching
// fan-out is dispatched asynchronously after the transition committed.
type ReviewUseCase struct {
	campaigns  port.CampaignStore
	dispatcher port.Dispatcher
	logger     *slog.Logger
}

// NewReviewUseCase creates a new usecase over the given ports.
func NewReviewUseCase(campaigns port.CampaignStore, dispatcher port.Dispatcher, logger *slog.Logger) *ReviewUseCase {
	return &ReviewUseCase{campaigns: campaigns, dispatcher: dispatcher, logger: logger}
}

// Approve moves a pending or rejected campaign to active.
func (u *ReviewUseCase) Approve(ctx context.Context, campaignID int64) (domain.Campaign, error) {
	return u.transition(ctx, campaignID, domain.ActionApprove, "")
}

// Reject moves a pending campaign to rejected. The reason, when given, is
// included in the notice sent to the fundraiser.
func (u *ReviewUseCase) Reject(ctx context.Context, campaignID int64, reason string) (domain.Campaign, error) {
	return u.transition(ctx, campaignID, domain.ActionReject, reason)
}

// Complete moves an active campaign to completed.
func (u *ReviewUseCase) Complete(ctx context.Context, campaignID int64) (domain.Campaign, error) {
	return u.transition(ctx, campaignID, domain.ActionComplete, "")
}

func (u *ReviewUseCase) transition(ctx context.Context, campaignID int64, action domain.CampaignAction, reason string) (domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if campaign == nil {
		return domain.Campaign{}, domain.NotFoundf("Campaign with id %d not found", campaignID)
	}

	next, err := domain.Transition(campaign.Status, action)
	if err != nil {
		return domain.Campaign{}, err
	}

	updated, err := u.campaigns.UpdateStatusFrom(ctx, campaignID, campaign.Status, next)
	if err != nil {
		return domain.Campaign{}, err
	}
	if updated == nil {
		// The stored status moved under us between read and write.
		return domain.Campaign{}, domain.InvalidOperationf("Campaign status changed concurrently, please retry")
	}

	u.fanOut(*updated, action, reason)
	return *updated, nil
}

// fanOut dispatches the notifications a review decision owes. Delivery is
// best-effort: the committed transition is authoritative regardless of
// notification outcome.
func (u *ReviewUseCase) fanOut(campaign domain.Campaign, action domain.CampaignAction, reason string) {
	switch action {
	case domain.ActionApprove:
		u.dispatcher.Dispatch(port.PushNotificationRequest{
			Title:      "New campaign: " + campaign.Name,
			Content:    fmt.Sprintf("A new campaign %q is live. Check it out!", campaign.Name),
			TargetType: domain.TargetNewCampaign,
		})
		u.dispatcher.Dispatch(port.PushNotificationRequest{
			Title:      "Campaign accepted",
			Content:    fmt.Sprintf("Your campaign %q has been approved and is now live.", campaign.Name),
			TargetType: domain.TargetSpecificUser,
			TargetUser: campaign.OwnerID,
		})
	case domain.ActionReject:
		content := fmt.Sprintf("Your campaign %q has been rejected.", campaign.Name)
		if reason != "" {
			content += " Reason: " + reason
		}
		u.dispatcher.Dispatch(port.PushNotificationRequest{
			Title:      "Campaign rejected",
			Content:    content,
			TargetType: domain.TargetSpecificUser,
			TargetUser: campaign.OwnerID,
		})
	case domain.ActionComplete:
		content := fmt.Sprintf("Campaign %q has been completed.", campaign.Name)
		u.dispatcher.Dispatch(port.PushNotificationRequest{
			Title:          "Campaign completed",
			Content:        content,
			TargetType:     domain.TargetFundraisers,
			TargetCampaign: campaign.ID,
		})
		u.dispatcher.Dispatch(port.PushNotificationRequest{
			Title:          "Campaign completed",
			Content:        content,
			TargetType:     domain.TargetDonors,
			TargetCampaign: campaign.ID,
		})
	}
}
