package usecase

import (
	"context"
	"log/slog"
	"time"

	"fundhub/internal/core/port"
)

// Notifier delivers fan-out work asynchronously. Requests are queued on a
// bounded channel and consumed by Run on a dedicated goroutine, so delivery
// is detached from the request that triggered it: a client disconnect never
// cancels fan-out, and a fan-out failure never rolls back money movement.
// Failures are logged, not propagated.
type Notifier struct {
	store  port.NotificationStore
	logger *slog.Logger
	queue  chan port.PushNotificationRequest
}

// NewNotifier creates a notifier with the given queue capacity.
func NewNotifier(store port.NotificationStore, logger *slog.Logger, queueSize int) *Notifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Notifier{
		store:  store,
		logger: logger,
		queue:  make(chan port.PushNotificationRequest, queueSize),
	}
}

// Dispatch enqueues a fan-out request without blocking. A full queue drops
// the request and reports false; notification delivery is best-effort.
func (n *Notifier) Dispatch(req port.PushNotificationRequest) bool {
	select {
	case n.queue <- req:
		return true
	default:
		n.logger.Error("notification queue full, dropping fan-out",
			slog.String("title", req.Title),
			slog.String("target_type", string(req.TargetType)))
		return false
	}
}

// Run consumes the queue until ctx is cancelled, then drains whatever is
// already queued before returning. Callers run it on the process lifetime
// context, not a request context.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case req := <-n.queue:
			n.push(req)
		case <-ctx.Done():
			for {
				select {
				case req := <-n.queue:
					n.push(req)
				default:
					return
				}
			}
		}
	}
}

func (n *Notifier) push(req port.PushNotificationRequest) {
	// Fresh context: the triggering request may be long gone.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := n.store.CreateAndPush(ctx, req); err != nil {
		n.logger.Error("notification push failed",
			slog.String("title", req.Title),
			slog.String("target_type", string(req.TargetType)),
			slog.Any("error", err))
	}
}
