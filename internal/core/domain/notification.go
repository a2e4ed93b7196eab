package domain

import "time"

// NotificationTarget selects which audience a notification is pushed to.
// Values match the target_type column in the notifications table.
type NotificationTarget string

const (
	// TargetAllUsers notifications carry no membership rows; every user
	// matches implicitly at read time.
	TargetAllUsers NotificationTarget = "AllUsers"
	// TargetSpecificUser addresses a single user identified by email.
	TargetSpecificUser NotificationTarget = "SpecificUser"
	// TargetFundraisers addresses the owner of a given campaign.
	TargetFundraisers NotificationTarget = "Fundraisers"
	// TargetDonors addresses the distinct donors of a given campaign.
	TargetDonors NotificationTarget = "Donors"
	// TargetNewCampaign addresses the current new-campaign subscriber set,
	// snapshotted at push time.
	TargetNewCampaign NotificationTarget = "NewCampaign"
)

// Valid reports whether t is one of the known target types.
func (t NotificationTarget) Valid() bool {
	switch t {
	case TargetAllUsers, TargetSpecificUser, TargetFundraisers, TargetDonors, TargetNewCampaign:
		return true
	}
	return false
}

// Notification is immutable once created. Its audience is captured as
// membership rows at push time, except for AllUsers.
type Notification struct {
	ID         string
	Title      string
	Content    string
	TargetType NotificationTarget
	CreatedAt  time.Time
}
