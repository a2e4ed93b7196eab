package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a handful of campaigns in various lifecycle
// states, donations against the active ones, and a few announcement
// subscribers.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	statuses := []string{"pending_verification", "active", "active", "rejected", "completed"}
	for i := 1; i <= 5; i++ {
		owner := fmt.Sprintf("fundraiser-%d@example.com", i)
		name := fmt.Sprintf("Campaign %d", i)
		start := time.Now().AddDate(0, 0, -7)
		end := time.Now().AddDate(0, 2, 0)
		target := int64(1_000_00) // 1000.00 units
		status := statuses[i-1]
		var campaignID int64
		err := db.QueryRow(ctx, `INSERT INTO campaigns
    (owner_id, name, description, target_amount, collected_amount, status, start_date, end_date, created_at, updated_at)
VALUES ($1,$2,$3,$4,0,$5,$6,$7,now(),now()) RETURNING id`,
			owner, name, "Demo campaign", target, status, start, end).Scan(&campaignID)
		if err != nil {
			return err
		}

		if status != "active" && status != "completed" {
			continue
		}
		for j := 0; j < 10; j++ {
			donor := fmt.Sprintf("donor-%d@example.com", r.Intn(20)+1)
			amount := int64((r.Intn(50) + 1) * 100)
			_, err = db.Exec(ctx, `INSERT INTO donations (id, donor_id, campaign_id, amount, message, created_at)
VALUES ($1,$2,$3,$4,$5,now())`,
				uuid.NewString(), donor, campaignID, amount, "Good luck!")
			if err != nil {
				return err
			}
			_, err = db.Exec(ctx, `UPDATE campaigns SET collected_amount = collected_amount + $1 WHERE id = $2`,
				amount, campaignID)
			if err != nil {
				return err
			}
		}
	}

	for i := 1; i <= 10; i++ {
		_, err := db.Exec(ctx, `INSERT INTO subscriptions (user_ref, subscribed_at)
VALUES ($1, now()) ON CONFLICT DO NOTHING`, fmt.Sprintf("donor-%d@example.com", i))
		if err != nil {
			return err
		}
	}
	return nil
}
