package usecase

import (
	"context"
	"net/mail"
	"strings"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
)

// NotificationUseCase implements admin-facing notification management and
// user-facing feeds plus announcement subscriptions. All validation happens
// before any write; the two-phase create-plus-audience persist is delegated
// to the store, which runs it in one transaction.
type NotificationUseCase struct {
	notifications port.NotificationStore
	subscriptions port.SubscriptionStore
}

// NewNotificationUseCase creates a new usecase over the given ports.
func NewNotificationUseCase(notifications port.NotificationStore, subscriptions port.SubscriptionStore) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, subscriptions: subscriptions}
}

// CreateAndPush validates the request and persists the notification together
// with its audience snapshot. Rejected requests leave no partial state.
func (u *NotificationUseCase) CreateAndPush(ctx context.Context, req port.PushNotificationRequest) (domain.Notification, error) {
	if strings.TrimSpace(req.Title) == "" {
		return domain.Notification{}, domain.Validationf("Title cannot be empty")
	}
	if strings.TrimSpace(req.Content) == "" {
		return domain.Notification{}, domain.Validationf("Content cannot be empty")
	}
	if !req.TargetType.Valid() {
		return domain.Notification{}, domain.Validationf("Unknown target type %q", string(req.TargetType))
	}

	switch req.TargetType {
	case domain.TargetSpecificUser:
		if _, err := mail.ParseAddress(req.TargetUser); err != nil {
			return domain.Notification{}, domain.Validationf("A valid user email is required for SpecificUser targets")
		}
	case domain.TargetFundraisers, domain.TargetDonors:
		if req.TargetCampaign <= 0 {
			return domain.Notification{}, domain.Validationf("A campaign id is required for %s targets", string(req.TargetType))
		}
	default:
		if req.TargetUser != "" || req.TargetCampaign != 0 {
			return domain.Notification{}, domain.Validationf("Target detail must be empty for %s targets", string(req.TargetType))
		}
	}

	return u.notifications.CreateAndPush(ctx, req)
}

// NotificationsForUser returns the user's feed: AllUsers notifications plus
// everything the user holds membership for.
func (u *NotificationUseCase) NotificationsForUser(ctx context.Context, userRef string) ([]domain.Notification, error) {
	return u.notifications.ListForUser(ctx, userRef)
}

// DeleteNotification removes a notification for everyone.
func (u *NotificationUseCase) DeleteNotification(ctx context.Context, id string) error {
	rows, err := u.notifications.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("Notification not found")
	}
	return nil
}

// DismissNotification removes a notification from one user's feed. The
// notification stays visible to the rest of its audience.
func (u *NotificationUseCase) DismissNotification(ctx context.Context, id, userRef string) error {
	rows, err := u.notifications.DeleteForUser(ctx, id, userRef)
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	n, err := u.notifications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.NotFoundf("Notification not found")
	}
	// Exists, but the user holds no membership row to remove.
	return domain.InvalidOperationf("Notification cannot be dismissed for this user")
}

// Subscribe opts the user into new-campaign announcements. Idempotent.
func (u *NotificationUseCase) Subscribe(ctx context.Context, userRef string) error {
	return u.subscriptions.Subscribe(ctx, userRef)
}

// Unsubscribe removes the opt-in. Unsubscribing when not subscribed is a
// no-op.
func (u *NotificationUseCase) Unsubscribe(ctx context.Context, userRef string) error {
	_, err := u.subscriptions.Unsubscribe(ctx, userRef)
	return err
}
