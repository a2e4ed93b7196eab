package domain

import "time"

// Campaign represents a fundraising campaign.
// Amounts are stored in integer minor currency units (e.g. cents).
type Campaign struct {
	ID                 int64
	OwnerID            string
	Name               string
	Description        string
	TargetAmount       int64
	CollectedAmount    int64
	Status             CampaignStatus
	StartDate          time.Time
	EndDate            time.Time
	EvidenceURL        *string
	EvidenceUploadedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CampaignStatus is the lifecycle state of a campaign. Values match the
// status column in the campaigns table.
type CampaignStatus string

const (
	StatusPending   CampaignStatus = "pending_verification"
	StatusActive    CampaignStatus = "active"
	StatusRejected  CampaignStatus = "rejected"
	StatusCompleted CampaignStatus = "completed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// CampaignAction is a lifecycle transition request.
type CampaignAction string

const (
	ActionApprove  CampaignAction = "approve"
	ActionReject   CampaignAction = "reject"
	ActionComplete CampaignAction = "complete"
)

// Transition returns the state a campaign moves to when action is applied in
// state from. Illegal edges return an InvalidOperation error and the zero
// status; the reason strings are surfaced verbatim to API callers. Transition
// never touches storage. Completed is terminal.
func Transition(from CampaignStatus, action CampaignAction) (CampaignStatus, error) {
	switch from {
	case StatusPending:
		switch action {
		case ActionApprove:
			return StatusActive, nil
		case ActionReject:
			return StatusRejected, nil
		case ActionComplete:
			return "", InvalidOperationf("Cannot complete a pending campaign")
		}
	case StatusActive:
		switch action {
		case ActionApprove:
			return "", InvalidOperationf("Campaign is already active")
		case ActionReject:
			return "", InvalidOperationf("Cannot reject an active campaign")
		case ActionComplete:
			return StatusCompleted, nil
		}
	case StatusRejected:
		switch action {
		case ActionApprove:
			return StatusActive, nil
		case ActionReject:
			return "", InvalidOperationf("Campaign is already rejected")
		case ActionComplete:
			return "", InvalidOperationf("Cannot complete a rejected campaign")
		}
	case StatusCompleted:
		switch action {
		case ActionApprove:
			return "", InvalidOperationf("Cannot approve a completed campaign")
		case ActionReject:
			return "", InvalidOperationf("Cannot reject a completed campaign")
		case ActionComplete:
			return "", InvalidOperationf("Campaign is already completed")
		}
	}
	return "", InvalidOperationf("Unknown campaign state %q", from)
}
