package httpadapter

import (
	"time"

	"fundhub/internal/core/domain"
)

// Response DTOs. Domain structs stay free of serialisation concerns; the
// wire shape lives here.

type campaignView struct {
	ID                 int64      `json:"id"`
	OwnerID            string     `json:"owner_id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	TargetAmount       int64      `json:"target_amount"`
	CollectedAmount    int64      `json:"collected_amount"`
	Status             string     `json:"status"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            time.Time  `json:"end_date"`
	EvidenceURL        *string    `json:"evidence_url,omitempty"`
	EvidenceUploadedAt *time.Time `json:"evidence_uploaded_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func toCampaignView(c domain.Campaign) campaignView {
	return campaignView{
		ID:                 c.ID,
		OwnerID:            c.OwnerID,
		Name:               c.Name,
		Description:        c.Description,
		TargetAmount:       c.TargetAmount,
		CollectedAmount:    c.CollectedAmount,
		Status:             string(c.Status),
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		EvidenceURL:        c.EvidenceURL,
		EvidenceUploadedAt: c.EvidenceUploadedAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toCampaignViews(cs []domain.Campaign) []campaignView {
	out := make([]campaignView, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignView(c))
	}
	return out
}

type donationView struct {
	ID         string    `json:"id"`
	DonorID    string    `json:"donor_id"`
	CampaignID int64     `json:"campaign_id"`
	Amount     int64     `json:"amount"`
	Message    *string   `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDonationView(d domain.Donation) donationView {
	return donationView{
		ID:         d.ID,
		DonorID:    d.DonorID,
		CampaignID: d.CampaignID,
		Amount:     d.Amount,
		Message:    d.Message,
		CreatedAt:  d.CreatedAt,
	}
}

func toDonationViews(ds []domain.Donation) []donationView {
	out := make([]donationView, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDonationView(d))
	}
	return out
}

type notificationView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	TargetType string    `json:"target_type"`
	CreatedAt  time.Time `json:"created_at"`
}

func toNotificationView(n domain.Notification) notificationView {
	return notificationView{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		TargetType: string(n.TargetType),
		CreatedAt:  n.CreatedAt,
	}
}

func toNotificationViews(ns []domain.Notification) []notificationView {
	out := make([]notificationView, 0, len(ns))
	for _, n := range ns {
		out = append(out, toNotificationView(n))
	}
	return out
}
