package port

import (
	"context"

	"fundhub/internal/core/domain"
)

// PushNotificationRequest describes a notification to create together with
// the audience it fans out to. Exactly one of TargetUser / TargetCampaign is
// meaningful depending on TargetType; AllUsers and NewCampaign carry neither.
type PushNotificationRequest struct {
	Title      string
	Content    string
	TargetType domain.NotificationTarget
	// TargetUser is the addressee email for SpecificUser targets.
	TargetUser string
	// TargetCampaign scopes Fundraisers and Donors targets to one campaign.
	TargetCampaign int64
}

// NotificationStore defines notification persistence. CreateAndPush is the
// fan-out primitive: the notification row and its audience membership rows
// commit in one transaction or not at all.
type NotificationStore interface {
	CreateAndPush(ctx context.Context, req PushNotificationRequest) (domain.Notification, error)
	// GetByID returns nil without error when no notification exists.
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	// ListForUser returns all AllUsers notifications plus every notification
	// the user holds a membership row for, newest first.
	ListForUser(ctx context.Context, userRef string) ([]domain.Notification, error)
	// Delete removes a notification; membership rows cascade. Returns rows
	// affected.
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteForUser removes only the user's membership row, leaving the
	// notification visible to the rest of its audience.
	DeleteForUser(ctx context.Context, id, userRef string) (int64, error)
}

// SubscriptionStore tracks opt-ins to new-campaign announcements. The
// subscriber set is consumed transactionally by CreateAndPush for
// NewCampaign targets.
type SubscriptionStore interface {
	// Subscribe is idempotent.
	Subscribe(ctx context.Context, userRef string) error
	Unsubscribe(ctx context.Context, userRef string) (int64, error)
	ListSubscribers(ctx context.Context) ([]domain.Subscription, error)
}
