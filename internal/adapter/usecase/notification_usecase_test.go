package usecase

import (
	"context"
	"errors"
	"testing"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
	"fundhub/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestCreateAndPushValidation checks every rejected shape fails before the
// store is touched.
func TestCreateAndPushValidation(t *testing.T) {
	cases := []struct {
		name    string
		req     port.PushNotificationRequest
		message string
	}{
		{
			name:    "empty title",
			req:     port.PushNotificationRequest{Title: "  ", Content: "c", TargetType: domain.TargetAllUsers},
			message: "Title cannot be empty",
		},
		{
			name:    "empty content",
			req:     port.PushNotificationRequest{Title: "t", Content: "", TargetType: domain.TargetAllUsers},
			message: "Content cannot be empty",
		},
		{
			name:    "unknown target",
			req:     port.PushNotificationRequest{Title: "t", Content: "c", TargetType: "Everyone"},
			message: `Unknown target type "Everyone"`,
		},
		{
			name:    "malformed email",
			req:     port.PushNotificationRequest{Title: "t", Content: "c", TargetType: domain.TargetSpecificUser, TargetUser: "not-an-email"},
			message: "A valid user email is required for SpecificUser targets",
		},
		{
			name:    "fundraisers without campaign",
			req:     port.PushNotificationRequest{Title: "t", Content: "c", TargetType: domain.TargetFundraisers},
			message: "A campaign id is required for Fundraisers targets",
		},
		{
			name:    "donors without campaign",
			req:     port.PushNotificationRequest{Title: "t", Content: "c", TargetType: domain.TargetDonors},
			message: "A campaign id is required for Donors targets",
		},
		{
			name:    "all users with detail",
			req:     port.PushNotificationRequest{Title: "t", Content: "c", TargetType: domain.TargetAllUsers, TargetUser: "a@b.com"},
			message: "Target detail must be empty for AllUsers targets",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// No expectations: a store call is a test failure.
			svc := NewNotificationUseCase(mocks.NewMockNotificationStore(t), mocks.NewMockSubscriptionStore(t))

			_, err := svc.CreateAndPush(context.Background(), tc.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tc.message {
				t.Fatalf("unexpected message %q, want %q", err.Error(), tc.message)
			}
		})
	}
}

// TestCreateAndPushAccepted delegates well-formed requests to the store.
func TestCreateAndPushAccepted(t *testing.T) {
	cases := []struct {
		name string
		req  port.PushNotificationRequest
	}{
		{
			name: "all users",
			req:  port.PushNotificationRequest{Title: "Maintenance", Content: "Back soon", TargetType: domain.TargetAllUsers},
		},
		{
			name: "specific user",
			req:  port.PushNotificationRequest{Title: "Hi", Content: "There", TargetType: domain.TargetSpecificUser, TargetUser: "user@example.com"},
		},
		{
			name: "donors",
			req:  port.PushNotificationRequest{Title: "Update", Content: "Funded", TargetType: domain.TargetDonors, TargetCampaign: 5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notifications := mocks.NewMockNotificationStore(t)
			notifications.EXPECT().CreateAndPush(mock.Anything, tc.req).
				Return(domain.Notification{ID: "n1", Title: tc.req.Title, TargetType: tc.req.TargetType}, nil)

			svc := NewNotificationUseCase(notifications, mocks.NewMockSubscriptionStore(t))

			n, err := svc.CreateAndPush(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("CreateAndPush error: %v", err)
			}
			if n.ID != "n1" {
				t.Fatalf("unexpected notification: %+v", n)
			}
		})
	}
}

// TestDeleteNotification maps zero affected rows to NotFound.
func TestDeleteNotification(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		notifications := mocks.NewMockNotificationStore(t)
		notifications.EXPECT().Delete(mock.Anything, "n1").Return(1, nil)

		svc := NewNotificationUseCase(notifications, mocks.NewMockSubscriptionStore(t))
		if err := svc.DeleteNotification(context.Background(), "n1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		notifications := mocks.NewMockNotificationStore(t)
		notifications.EXPECT().Delete(mock.Anything, "n1").Return(0, nil)

		svc := NewNotificationUseCase(notifications, mocks.NewMockSubscriptionStore(t))
		err := svc.DeleteNotification(context.Background(), "n1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

// TestDismissNotification distinguishes a missing notification from one the
// user simply has no membership for.
func TestDismissNotification(t *testing.T) {
	t.Run("dismissed", func(t *testing.T) {
		notifications := mocks.NewMockNotificationStore(t)
		notifications.EXPECT().DeleteForUser(mock.Anything, "n1", "user@example.com").Return(1, nil)

		svc := NewNotificationUseCase(notifications, mocks.NewMockSubscriptionStore(t))
		if err := svc.DismissNotification(context.Background(), "n1", "user@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		notifications := mocks.NewMockNotificationStore(t)
		notifications.EXPECT().DeleteForUser(mock.Anything, "n1", "user@example.com").Return(0, nil)
		notifications.EXPECT().GetByID(mock.Anything, "n1").Return(nil, nil)

		svc := NewNotificationUseCase(notifications, mocks.NewMockSubscriptionStore(t))
		err := svc.DismissNotification(context.Background(), "n1", "user@example.com")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("no membership", func(t *testing.T) {
		notifications := mocks.NewMockNotificationStore(t)
		notifications.EXPECT().DeleteForUser(mock.Anything, "n1", "user@example.com").Return(0, nil)
		notifications.EXPECT().GetByID(mock.Anything, "n1").
			Return(&domain.Notification{ID: "n1", TargetType: domain.TargetAllUsers}, nil)

		svc := NewNotificationUseCase(notifications, mocks.NewMockSubscriptionStore(t))
		err := svc.DismissNotification(context.Background(), "n1", "user@example.com")
		if !errors.Is(err, domain.ErrInvalidOperation) {
			t.Fatalf("expected invalid operation, got %v", err)
		}
	})
}

// TestSubscriptionLifecycle checks subscribe and unsubscribe pass through,
// with unsubscribe silent on a missing row.
func TestSubscriptionLifecycle(t *testing.T) {
	subscriptions := mocks.NewMockSubscriptionStore(t)
	subscriptions.EXPECT().Subscribe(mock.Anything, "user@example.com").Return(nil)
	subscriptions.EXPECT().Unsubscribe(mock.Anything, "user@example.com").Return(0, nil)

	svc := NewNotificationUseCase(mocks.NewMockNotificationStore(t), subscriptions)

	if err := svc.Subscribe(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("Subscribe error: %v", err)
	}
	if err := svc.Unsubscribe(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("Unsubscribe error: %v", err)
	}
}
