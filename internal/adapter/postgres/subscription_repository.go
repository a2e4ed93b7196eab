package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundhub/internal/core/domain"
)

// SubscriptionRepository implements port.SubscriptionStore using pgxpool for
// PostgreSQL.
type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepository returns a new repository instance.
func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

// Subscribe opts the user into new-campaign announcements. Subscribing twice
// is a no-op.
func (r *SubscriptionRepository) Subscribe(ctx context.Context, userRef string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO subscriptions (user_ref, subscribed_at) VALUES ($1, now()) ON CONFLICT (user_ref) DO NOTHING`, userRef)
	return domain.StorageError(err)
}

// Unsubscribe removes the opt-in and reports how many rows went away.
func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, userRef string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE user_ref = $1`, userRef)
	if err != nil {
		return 0, domain.StorageError(err)
	}
	return tag.RowsAffected(), nil
}

// ListSubscribers returns the current subscriber set.
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context) ([]domain.Subscription, error) {
	rows, err := r.pool.Query(ctx, `SELECT user_ref, subscribed_at FROM subscriptions ORDER BY subscribed_at`)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscription, error) {
		var s domain.Subscription
		err := row.Scan(&s.UserRef, &s.SubscribedAt)
		return s, err
	})
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}
