package domain

import "time"

// Donation is a monetary contribution recorded against a campaign. Amount is
// in integer minor currency units. A donation is immutable once recorded
// except for Message, which the donor may clear.
type Donation struct {
	ID         string
	DonorID    string
	CampaignID int64
	Amount     int64
	Message    *string
	CreatedAt  time.Time
}
