package usecase

import (
	"context"
	"testing"
	"time"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
	"fundhub/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestNotifierDelivers pushes queued requests to the store from the worker
// goroutine.
func TestNotifierDelivers(t *testing.T) {
	store := mocks.NewMockNotificationStore(t)

	delivered := make(chan port.PushNotificationRequest, 2)
	store.EXPECT().CreateAndPush(mock.Anything, mock.AnythingOfType("port.PushNotificationRequest")).
		RunAndReturn(func(_ context.Context, req port.PushNotificationRequest) (domain.Notification, error) {
			delivered <- req
			return domain.Notification{ID: "n"}, nil
		})

	n := NewNotifier(store, discardLogger(), 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		n.Run(ctx)
		close(done)
	}()

	if !n.Dispatch(port.PushNotificationRequest{Title: "a", Content: "c", TargetType: domain.TargetAllUsers}) {
		t.Fatal("dispatch dropped with free capacity")
	}
	if !n.Dispatch(port.PushNotificationRequest{Title: "b", Content: "c", TargetType: domain.TargetAllUsers}) {
		t.Fatal("dispatch dropped with free capacity")
	}

	for i := 0; i < 2; i++ {
		select {
		case <-delivered:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for delivery")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// TestNotifierDropsWhenFull reports false instead of blocking the caller.
func TestNotifierDropsWhenFull(t *testing.T) {
	// No Run consumer: the single slot fills immediately.
	n := NewNotifier(mocks.NewMockNotificationStore(t), discardLogger(), 1)

	req := port.PushNotificationRequest{Title: "a", Content: "c", TargetType: domain.TargetAllUsers}
	if !n.Dispatch(req) {
		t.Fatal("first dispatch should fit")
	}
	if n.Dispatch(req) {
		t.Fatal("second dispatch should drop")
	}
}

// TestNotifierDrainsOnShutdown delivers what was already queued even when the
// context is cancelled before the worker starts.
func TestNotifierDrainsOnShutdown(t *testing.T) {
	store := mocks.NewMockNotificationStore(t)

	delivered := make(chan struct{}, 1)
	store.EXPECT().CreateAndPush(mock.Anything, mock.AnythingOfType("port.PushNotificationRequest")).
		RunAndReturn(func(context.Context, port.PushNotificationRequest) (domain.Notification, error) {
			delivered <- struct{}{}
			return domain.Notification{ID: "n"}, nil
		})

	n := NewNotifier(store, discardLogger(), 8)
	if !n.Dispatch(port.PushNotificationRequest{Title: "a", Content: "c", TargetType: domain.TargetAllUsers}) {
		t.Fatal("dispatch dropped with free capacity")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		n.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not drain and return")
	}
	select {
	case <-delivered:
	default:
		t.Fatal("queued request was not delivered during drain")
	}
}
