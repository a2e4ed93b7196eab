package domain

import "time"

// Subscription records a user's opt-in to new-campaign announcements.
type Subscription struct {
	UserRef      string
	SubscribedAt time.Time
}
