package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
)

// NotificationRepository implements port.NotificationStore using pgxpool for
// PostgreSQL.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a new repository instance.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// audienceInsert resolves one target type into membership rows. The target
// types form a fixed, closed set, so fan-out is a dispatch table instead of
// a listener registry. AllUsers is deliberately absent: it writes no rows
// and matches every user at read time.
type audienceInsert struct {
	sql  string
	args func(notificationID string, req port.PushNotificationRequest) []any
}

var audience = map[domain.NotificationTarget]audienceInsert{
	domain.TargetSpecificUser: {
		sql: `INSERT INTO notification_membership (user_ref, notification_id) VALUES ($2, $1)`,
		args: func(id string, req port.PushNotificationRequest) []any {
			return []any{id, req.TargetUser}
		},
	},
	// Snapshot of the subscriber set at push time; later subscribers do not
	// retroactively gain membership.
	domain.TargetNewCampaign: {
		sql: `INSERT INTO notification_membership (user_ref, notification_id)
SELECT user_ref, $1 FROM subscriptions`,
		args: func(id string, req port.PushNotificationRequest) []any {
			return []any{id}
		},
	},
	domain.TargetFundraisers: {
		sql: `INSERT INTO notification_membership (user_ref, notification_id)
SELECT owner_id, $1 FROM campaigns WHERE id = $2`,
		args: func(id string, req port.PushNotificationRequest) []any {
			return []any{id, req.TargetCampaign}
		},
	},
	domain.TargetDonors: {
		sql: `INSERT INTO notification_membership (user_ref, notification_id)
SELECT DISTINCT donor_id, $1 FROM donations WHERE campaign_id = $2`,
		args: func(id string, req port.PushNotificationRequest) []any {
			return []any{id, req.TargetCampaign}
		},
	},
}

// CreateAndPush creates the notification row and its audience membership
// rows in one transaction; either both commit or neither does.
func (r *NotificationRepository) CreateAndPush(ctx context.Context, req port.PushNotificationRequest) (domain.Notification, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Notification{}, domain.StorageError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	n := domain.Notification{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		TargetType: req.TargetType,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = tx.Exec(ctx, `INSERT INTO notifications (id, title, content, target_type, created_at) VALUES ($1,$2,$3,$4,$5)`,
		n.ID, n.Title, n.Content, n.TargetType, n.CreatedAt)
	if err != nil {
		return domain.Notification{}, domain.StorageError(err)
	}

	if ins, ok := audience[req.TargetType]; ok {
		if _, err = tx.Exec(ctx, ins.sql, ins.args(n.ID, req)...); err != nil {
			return domain.Notification{}, domain.StorageError(err)
		}
	}
	return n, nil
}

const notificationColumns = `id, title, content, target_type, created_at`

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.TargetType, &n.CreatedAt)
	return n, err
}

// GetByID returns a notification by id, or nil when absent.
func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	n, err := scanNotification(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return &n, nil
}

// ListForUser returns the union of AllUsers notifications and those the user
// holds a membership row for, newest first.
func (r *NotificationRepository) ListForUser(ctx context.Context, userRef string) ([]domain.Notification, error) {
	rows, err := r.pool.Query(ctx, `SELECT n.id, n.title, n.content, n.target_type, n.created_at
FROM notifications n
LEFT JOIN notification_membership m ON m.notification_id = n.id AND m.user_ref = $1
WHERE n.target_type = 'AllUsers' OR m.user_ref IS NOT NULL
ORDER BY n.created_at DESC`, userRef)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		return scanNotification(row)
	})
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

// Delete removes the notification; membership rows go with it via the
// foreign key cascade.
func (r *NotificationRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return 0, domain.StorageError(err)
	}
	return tag.RowsAffected(), nil
}

// DeleteForUser removes only the user's membership row.
func (r *NotificationRepository) DeleteForUser(ctx context.Context, id, userRef string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notification_membership WHERE notification_id = $1 AND user_ref = $2`, id, userRef)
	if err != nil {
		return 0, domain.StorageError(err)
	}
	return tag.RowsAffected(), nil
}
