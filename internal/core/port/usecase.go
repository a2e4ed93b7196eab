package port

import (
	"context"
	"time"

	"fundhub/internal/core/domain"
)

// MakeDonationRequest carries a donor's contribution to a campaign.
type MakeDonationRequest struct {
	DonorID    string
	CampaignID int64
	Amount     int64
	Message    *string
}

// CreateCampaignRequest carries a fundraiser's new campaign. The campaign
// starts in pending verification regardless of input.
type CreateCampaignRequest struct {
	OwnerID      string
	Name         string
	Description  string
	TargetAmount int64
	StartDate    time.Time
	EndDate      time.Time
}

// DonationUseCase is the inbound port for the donation workflow.
type DonationUseCase interface {
	// MakeDonation validates and records a donation, updates campaign
	// progress and, when the target is reached, completes the campaign and
	// fans out completion notices exactly once.
	MakeDonation(ctx context.Context, req MakeDonationRequest) (domain.Donation, error)
	// DeleteDonationMessage clears the message of the caller's own donation.
	DeleteDonationMessage(ctx context.Context, donationID, userID string) error
	DonationsByCampaign(ctx context.Context, campaignID int64) ([]domain.Donation, error)
	DonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error)
}

// CampaignUseCase is the inbound port for fundraiser-facing campaign
// management.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (domain.Campaign, error)
	CampaignsByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	CampaignsByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error)
	UploadEvidence(ctx context.Context, ownerID string, campaignID int64, evidenceURL string) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, ownerID string, campaignID int64) error
}

// ReviewUseCase is the inbound port for admin campaign review. Each
// operation applies a lifecycle transition and triggers the matching
// fan-out asynchronously.
type ReviewUseCase interface {
	Approve(ctx context.Context, campaignID int64) (domain.Campaign, error)
	Reject(ctx context.Context, campaignID int64, reason string) (domain.Campaign, error)
	Complete(ctx context.Context, campaignID int64) (domain.Campaign, error)
}

// NotificationUseCase is the inbound port for notifications and
// announcement subscriptions.
type NotificationUseCase interface {
	CreateAndPush(ctx context.Context, req PushNotificationRequest) (domain.Notification, error)
	NotificationsForUser(ctx context.Context, userRef string) ([]domain.Notification, error)
	DeleteNotification(ctx context.Context, id string) error
	// DismissNotification removes the notification from one user's feed only.
	DismissNotification(ctx context.Context, id, userRef string) error
	Subscribe(ctx context.Context, userRef string) error
	Unsubscribe(ctx context.Context, userRef string) error
}
