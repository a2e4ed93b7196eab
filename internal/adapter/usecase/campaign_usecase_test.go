package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
	"fundhub/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestCreateCampaignValidation rejects malformed requests before any write.
func TestCreateCampaignValidation(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		name    string
		req     port.CreateCampaignRequest
		message string
	}{
		{
			name:    "missing name",
			req:     port.CreateCampaignRequest{OwnerID: "owner@example.com", Name: " ", TargetAmount: 100},
			message: "Campaign name is required",
		},
		{
			name:    "non-positive target",
			req:     port.CreateCampaignRequest{OwnerID: "owner@example.com", Name: "Books", TargetAmount: 0},
			message: "Target amount must be positive",
		},
		{
			name: "end before start",
			req: port.CreateCampaignRequest{
				OwnerID: "owner@example.com", Name: "Books", TargetAmount: 100,
				StartDate: now, EndDate: now.Add(-time.Hour),
			},
			message: "End date must be after start date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCampaignUseCase(mocks.NewMockCampaignStore(t))

			_, err := svc.CreateCampaign(context.Background(), tc.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tc.message {
				t.Fatalf("unexpected message %q, want %q", err.Error(), tc.message)
			}
		})
	}
}

// TestCreateCampaignDefaults fills the date window when omitted and always
// starts pending verification.
func TestCreateCampaignDefaults(t *testing.T) {
	campaigns := mocks.NewMockCampaignStore(t)

	var stored domain.Campaign
	campaigns.EXPECT().Create(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		RunAndReturn(func(_ context.Context, c domain.Campaign) (domain.Campaign, error) {
			stored = c
			c.ID = 1
			return c, nil
		})

	svc := NewCampaignUseCase(campaigns)

	created, err := svc.CreateCampaign(context.Background(), port.CreateCampaignRequest{
		OwnerID:      "owner@example.com",
		Name:         "Books",
		TargetAmount: 100,
	})
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected generated id, got %d", created.ID)
	}

	if stored.Status != domain.StatusPending {
		t.Fatalf("expected pending verification, got %s", stored.Status)
	}
	if stored.StartDate.IsZero() || stored.EndDate.IsZero() {
		t.Fatalf("expected defaulted date window, got %+v", stored)
	}
	if want := stored.StartDate.AddDate(0, 3, 0); !stored.EndDate.Equal(want) {
		t.Fatalf("expected three-month default window, got end %v want %v", stored.EndDate, want)
	}
}

// TestGetCampaignNotFound maps a nil store result to NotFound.
func TestGetCampaignNotFound(t *testing.T) {
	campaigns := mocks.NewMockCampaignStore(t)
	campaigns.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, nil)

	svc := NewCampaignUseCase(campaigns)

	_, err := svc.GetCampaign(context.Background(), 9)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// TestCampaignsByStatusRejectsUnknown validates the filter before querying.
func TestCampaignsByStatusRejectsUnknown(t *testing.T) {
	svc := NewCampaignUseCase(mocks.NewMockCampaignStore(t))

	_, err := svc.CampaignsByStatus(context.Background(), "archived")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestUploadEvidence covers success plus the NotFound/Forbidden split when
// the conditional update matches nothing.
func TestUploadEvidence(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		campaigns := mocks.NewMockCampaignStore(t)
		url := "https://files.example.com/report.pdf"
		updated := &domain.Campaign{ID: 4, OwnerID: "owner@example.com", EvidenceURL: &url}
		campaigns.EXPECT().SetEvidence(mock.Anything, int64(4), "owner@example.com", url).Return(updated, nil)

		svc := NewCampaignUseCase(campaigns)

		c, err := svc.UploadEvidence(context.Background(), "owner@example.com", 4, url)
		if err != nil {
			t.Fatalf("UploadEvidence error: %v", err)
		}
		if c.EvidenceURL == nil || *c.EvidenceURL != url {
			t.Fatalf("evidence url not recorded: %+v", c)
		}
	})

	t.Run("empty url", func(t *testing.T) {
		svc := NewCampaignUseCase(mocks.NewMockCampaignStore(t))
		_, err := svc.UploadEvidence(context.Background(), "owner@example.com", 4, "  ")
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		campaigns := mocks.NewMockCampaignStore(t)
		campaigns.EXPECT().SetEvidence(mock.Anything, int64(4), "owner@example.com", "u").Return(nil, nil)
		campaigns.EXPECT().GetByID(mock.Anything, int64(4)).Return(nil, nil)

		svc := NewCampaignUseCase(campaigns)
		_, err := svc.UploadEvidence(context.Background(), "owner@example.com", 4, "u")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		campaigns := mocks.NewMockCampaignStore(t)
		campaigns.EXPECT().SetEvidence(mock.Anything, int64(4), "intruder@example.com", "u").Return(nil, nil)
		campaigns.EXPECT().GetByID(mock.Anything, int64(4)).
			Return(&domain.Campaign{ID: 4, OwnerID: "owner@example.com"}, nil)

		svc := NewCampaignUseCase(campaigns)
		_, err := svc.UploadEvidence(context.Background(), "intruder@example.com", 4, "u")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}

// TestDeleteCampaign enforces ownership and restricts deletion to campaigns
// that never went live.
func TestDeleteCampaign(t *testing.T) {
	t.Run("pending", func(t *testing.T) {
		campaigns := mocks.NewMockCampaignStore(t)
		campaigns.EXPECT().GetByID(mock.Anything, int64(4)).
			Return(&domain.Campaign{ID: 4, OwnerID: "owner@example.com", Status: domain.StatusPending}, nil)
		campaigns.EXPECT().Delete(mock.Anything, int64(4), "owner@example.com").Return(1, nil)

		svc := NewCampaignUseCase(campaigns)
		if err := svc.DeleteCampaign(context.Background(), "owner@example.com", 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		campaigns := mocks.NewMockCampaignStore(t)
		campaigns.EXPECT().GetByID(mock.Anything, int64(4)).
			Return(&domain.Campaign{ID: 4, OwnerID: "owner@example.com", Status: domain.StatusPending}, nil)

		svc := NewCampaignUseCase(campaigns)
		err := svc.DeleteCampaign(context.Background(), "intruder@example.com", 4)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("active", func(t *testing.T) {
		campaigns := mocks.NewMockCampaignStore(t)
		campaigns.EXPECT().GetByID(mock.Anything, int64(4)).
			Return(&domain.Campaign{ID: 4, OwnerID: "owner@example.com", Status: domain.StatusActive}, nil)

		svc := NewCampaignUseCase(campaigns)
		err := svc.DeleteCampaign(context.Background(), "owner@example.com", 4)
		if !errors.Is(err, domain.ErrInvalidOperation) {
			t.Fatalf("expected invalid operation, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		campaigns := mocks.NewMockCampaignStore(t)
		campaigns.EXPECT().GetByID(mock.Anything, int64(4)).Return(nil, nil)

		svc := NewCampaignUseCase(campaigns)
		err := svc.DeleteCampaign(context.Background(), "owner@example.com", 4)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
