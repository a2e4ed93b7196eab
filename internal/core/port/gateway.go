package port

import "context"

// PaymentGateway moves donated money to its destination. Implementations are
// pluggable strategies; the donation workflow only cares about success or
// failure.
type PaymentGateway interface {
	Pay(ctx context.Context, amount int64, destination string) error
}

// Dispatcher accepts fan-out work for asynchronous delivery. Dispatch must
// not block: it reports false when the request was dropped (queue full or
// dispatcher stopped). Notification delivery is best-effort, so callers never
// treat a drop as an error.
type Dispatcher interface {
	Dispatch(req PushNotificationRequest) bool
}
