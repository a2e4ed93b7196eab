package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
	"fundhub/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestMakeDonationRejectsNonPositiveAmount ensures invalid amounts fail before
// any port is touched.
func TestMakeDonationRejectsNonPositiveAmount(t *testing.T) {
	donations := mocks.NewMockDonationStore(t)
	campaigns := mocks.NewMockCampaignStore(t)
	gateway := mocks.NewMockPaymentGateway(t)
	dispatcher := mocks.NewMockDispatcher(t)

	svc := NewDonationUseCase(donations, campaigns, gateway, dispatcher, discardLogger())

	for _, amount := range []int64{0, -5} {
		_, err := svc.MakeDonation(context.Background(), port.MakeDonationRequest{
			DonorID:    "donor@example.com",
			CampaignID: 1,
			Amount:     amount,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("amount %d: expected validation error, got %v", amount, err)
		}
	}
}

// TestMakeDonationCampaignNotFound maps a missing campaign to NotFound.
func TestMakeDonationCampaignNotFound(t *testing.T) {
	donations := mocks.NewMockDonationStore(t)
	campaigns := mocks.NewMockCampaignStore(t)
	gateway := mocks.NewMockPaymentGateway(t)
	dispatcher := mocks.NewMockDispatcher(t)

	campaigns.EXPECT().GetByID(mock.Anything, int64(42)).Return(nil, nil)

	svc := NewDonationUseCase(donations, campaigns, gateway, dispatcher, discardLogger())

	_, err := svc.MakeDonation(context.Background(), port.MakeDonationRequest{
		DonorID:    "donor@example.com",
		CampaignID: 42,
		Amount:     100,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// TestMakeDonationInactiveCampaign rejects donations to campaigns that are not
// active, whatever their state.
func TestMakeDonationInactiveCampaign(t *testing.T) {
	for _, status := range []domain.CampaignStatus{domain.StatusPending, domain.StatusRejected, domain.StatusCompleted} {
		donations := mocks.NewMockDonationStore(t)
		campaigns := mocks.NewMockCampaignStore(t)
		gateway := mocks.NewMockPaymentGateway(t)
		dispatcher := mocks.NewMockDispatcher(t)

		campaigns.EXPECT().GetByID(mock.Anything, int64(1)).
			Return(&domain.Campaign{ID: 1, OwnerID: "owner@example.com", Status: status}, nil)

		svc := NewDonationUseCase(donations, campaigns, gateway, dispatcher, discardLogger())

		_, err := svc.MakeDonation(context.Background(), port.MakeDonationRequest{
			DonorID:    "donor@example.com",
			CampaignID: 1,
			Amount:     100,
		})
		if !errors.Is(err, domain.ErrInvalidOperation) {
			t.Fatalf("status %s: expected invalid operation, got %v", status, err)
		}
		if err.Error() != "Campaign is not accepting donations" {
			t.Fatalf("status %s: unexpected message %q", status, err.Error())
		}
	}
}

// TestMakeDonationSuccess walks the happy path: payment, atomic record, and a
// best-effort note to the fundraiser but no completion fan-out while the
// target is not reached.
func TestMakeDonationSuccess(t *testing.T) {
	donations := mocks.NewMockDonationStore(t)
	campaigns := mocks.NewMockCampaignStore(t)
	gateway := mocks.NewMockPaymentGateway(t)
	dispatcher := mocks.NewMockDispatcher(t)

	campaign := &domain.Campaign{
		ID:              7,
		OwnerID:         "owner@example.com",
		Name:            "Clean Water",
		Status:          domain.StatusActive,
		TargetAmount:    1000,
		CollectedAmount: 100,
	}
	campaigns.EXPECT().GetByID(mock.Anything, int64(7)).Return(campaign, nil)

	gateway.EXPECT().Pay(mock.Anything, int64(200), "owner@example.com").Return(nil)

	donations.EXPECT().CreateAndCollect(mock.Anything, mock.AnythingOfType("domain.Donation")).
		RunAndReturn(func(_ context.Context, d domain.Donation) (domain.Donation, error) {
			if d.ID == "" {
				t.Errorf("expected a generated donation id")
			}
			if d.CampaignID != 7 || d.Amount != 200 {
				t.Errorf("unexpected donation payload: %+v", d)
			}
			return d, nil
		})

	var dispatched []port.PushNotificationRequest
	dispatcher.EXPECT().Dispatch(mock.AnythingOfType("port.PushNotificationRequest")).
		RunAndReturn(func(req port.PushNotificationRequest) bool {
			dispatched = append(dispatched, req)
			return true
		})

	svc := NewDonationUseCase(donations, campaigns, gateway, dispatcher, discardLogger())

	donation, err := svc.MakeDonation(context.Background(), port.MakeDonationRequest{
		DonorID:    "donor@example.com",
		CampaignID: 7,
		Amount:     200,
	})
	if err != nil {
		t.Fatalf("MakeDonation error: %v", err)
	}
	if donation.DonorID != "donor@example.com" {
		t.Fatalf("unexpected donor: %q", donation.DonorID)
	}

	if len(dispatched) != 1 {
		t.Fatalf("expected exactly one dispatch, got %d", len(dispatched))
	}
	if dispatched[0].TargetType != domain.TargetSpecificUser || dispatched[0].TargetUser != "owner@example.com" {
		t.Fatalf("unexpected fan-out: %+v", dispatched[0])
	}
}

// TestMakeDonationPaymentFailure aborts before anything is recorded.
func TestMakeDonationPaymentFailure(t *testing.T) {
	donations := mocks.NewMockDonationStore(t)
	campaigns := mocks.NewMockCampaignStore(t)
	gateway := mocks.NewMockPaymentGateway(t)
	dispatcher := mocks.NewMockDispatcher(t)

	campaigns.EXPECT().GetByID(mock.Anything, int64(7)).
		Return(&domain.Campaign{ID: 7, OwnerID: "owner@example.com", Status: domain.StatusActive, TargetAmount: 1000}, nil)
	gateway.EXPECT().Pay(mock.Anything, int64(200), "owner@example.com").Return(errors.New("card declined"))

	svc := NewDonationUseCase(donations, campaigns, gateway, dispatcher, discardLogger())

	_, err := svc.MakeDonation(context.Background(), port.MakeDonationRequest{
		DonorID:    "donor@example.com",
		CampaignID: 7,
		Amount:     200,
	})
	if err == nil {
		t.Fatal("expected payment error")
	}
}

// TestMakeDonationCompletesCampaign verifies the donation that crosses the
// target flips the campaign to completed and emits the Fundraisers + Donors
// pair exactly once.
func TestMakeDonationCompletesCampaign(t *testing.T) {
	donations := mocks.NewMockDonationStore(t)
	campaigns := mocks.NewMockCampaignStore(t)
	gateway := mocks.NewMockPaymentGateway(t)
	dispatcher := mocks.NewMockDispatcher(t)

	before := &domain.Campaign{
		ID: 7, OwnerID: "owner@example.com", Name: "Clean Water",
		Status: domain.StatusActive, TargetAmount: 1000, CollectedAmount: 900,
	}
	after := &domain.Campaign{
		ID: 7, OwnerID: "owner@example.com", Name: "Clean Water",
		Status: domain.StatusActive, TargetAmount: 1000, CollectedAmount: 1100,
	}
	completed := &domain.Campaign{
		ID: 7, OwnerID: "owner@example.com", Name: "Clean Water",
		Status: domain.StatusCompleted, TargetAmount: 1000, CollectedAmount: 1100,
	}

	campaigns.EXPECT().GetByID(mock.Anything, int64(7)).Return(before, nil).Once()
	campaigns.EXPECT().GetByID(mock.Anything, int64(7)).Return(after, nil).Once()
	campaigns.EXPECT().
		UpdateStatusFrom(mock.Anything, int64(7), domain.StatusActive, domain.StatusCompleted).
		Return(completed, nil)

	gateway.EXPECT().Pay(mock.Anything, int64(200), "owner@example.com").Return(nil)
	donations.EXPECT().CreateAndCollect(mock.Anything, mock.AnythingOfType("domain.Donation")).
		RunAndReturn(func(_ context.Context, d domain.Donation) (domain.Donation, error) {
			return d, nil
		})

	var dispatched []port.PushNotificationRequest
	dispatcher.EXPECT().Dispatch(mock.AnythingOfType("port.PushNotificationRequest")).
		RunAndReturn(func(req port.PushNotificationRequest) bool {
			dispatched = append(dispatched, req)
			return true
		})

	svc := NewDonationUseCase(donations, campaigns, gateway, dispatcher, discardLogger())

	if _, err := svc.MakeDonation(context.Background(), port.MakeDonationRequest{
		DonorID:    "donor@example.com",
		CampaignID: 7,
		Amount:     200,
	}); err != nil {
		t.Fatalf("MakeDonation error: %v", err)
	}

	// Completion pair first, then the fundraiser's donation note.
	if len(dispatched) != 3 {
		t.Fatalf("expected 3 dispatches, got %d: %+v", len(dispatched), dispatched)
	}
	if dispatched[0].TargetType != domain.TargetFundraisers || dispatched[0].TargetCampaign != 7 {
		t.Fatalf("unexpected first dispatch: %+v", dispatched[0])
	}
	if dispatched[1].TargetType != domain.TargetDonors || dispatched[1].TargetCampaign != 7 {
		t.Fatalf("unexpected second dispatch: %+v", dispatched[1])
	}
	if dispatched[0].Title != "Campaign completed" || dispatched[1].Title != "Campaign completed" {
		t.Fatalf("unexpected completion titles: %q / %q", dispatched[0].Title, dispatched[1].Title)
	}
	if dispatched[2].TargetType != domain.TargetSpecificUser {
		t.Fatalf("unexpected third dispatch: %+v", dispatched[2])
	}
}

// TestConcurrentDonationsSingleCompletion simulates concurrent donations
// racing past the target against shared mutable campaign state. The
// conditional status update ensures the completion pair goes out exactly once
// no matter how many donations land after the target is crossed.
func TestConcurrentDonationsSingleCompletion(t *testing.T) {
	donations := mocks.NewMockDonationStore(t)
	campaigns := mocks.NewMockCampaignStore(t)
	gateway := mocks.NewMockPaymentGateway(t)
	dispatcher := mocks.NewMockDispatcher(t)

	var (
		mu        sync.Mutex
		status    = domain.StatusActive
		collected int64
	)
	const target = 50

	snapshot := func() *domain.Campaign {
		mu.Lock()
		defer mu.Unlock()
		return &domain.Campaign{
			ID: 1, OwnerID: "owner@example.com", Name: "Race",
			Status: status, TargetAmount: target, CollectedAmount: collected,
		}
	}

	campaigns.EXPECT().GetByID(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) (*domain.Campaign, error) {
			return snapshot(), nil
		})
	campaigns.EXPECT().
		UpdateStatusFrom(mock.Anything, int64(1), domain.StatusActive, domain.StatusCompleted).
		RunAndReturn(func(_ context.Context, _ int64, from, to domain.CampaignStatus) (*domain.Campaign, error) {
			mu.Lock()
			defer mu.Unlock()
			if status != from {
				return nil, nil
			}
			status = to
			return &domain.Campaign{
				ID: 1, OwnerID: "owner@example.com", Name: "Race",
				Status: to, TargetAmount: target, CollectedAmount: collected,
			}, nil
		})

	gateway.EXPECT().Pay(mock.Anything, int64(10), "owner@example.com").Return(nil)
	donations.EXPECT().CreateAndCollect(mock.Anything, mock.AnythingOfType("domain.Donation")).
		RunAndReturn(func(_ context.Context, d domain.Donation) (domain.Donation, error) {
			mu.Lock()
			defer mu.Unlock()
			collected += d.Amount
			return d, nil
		})

	var (
		dispatchMu  sync.Mutex
		completions int
	)
	dispatcher.EXPECT().Dispatch(mock.AnythingOfType("port.PushNotificationRequest")).
		RunAndReturn(func(req port.PushNotificationRequest) bool {
			if req.Title == "Campaign completed" {
				dispatchMu.Lock()
				completions++
				dispatchMu.Unlock()
			}
			return true
		})

	svc := NewDonationUseCase(donations, campaigns, gateway, dispatcher, discardLogger())

	wg := sync.WaitGroup{}
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, _ = svc.MakeDonation(context.Background(), port.MakeDonationRequest{
				DonorID:    "donor@example.com",
				CampaignID: 1,
				Amount:     10,
			})
		}()
	}
	wg.Wait()

	if collected != 100 {
		t.Fatalf("lost donation updates: collected %d, want 100", collected)
	}
	if status != domain.StatusCompleted {
		t.Fatalf("campaign never completed: %s", status)
	}
	// One winner, one Fundraisers + Donors pair.
	if completions != 2 {
		t.Fatalf("completion pair dispatched %d times, want 2", completions)
	}
}

// TestDeleteDonationMessage covers the three outcomes of clearing a message:
// owner succeeds, missing donation is NotFound, someone else's donation is
// Forbidden.
func TestDeleteDonationMessage(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		donations := mocks.NewMockDonationStore(t)
		donations.EXPECT().ClearMessage(mock.Anything, "d1", "donor@example.com").Return(1, nil)

		svc := NewDonationUseCase(donations, mocks.NewMockCampaignStore(t), mocks.NewMockPaymentGateway(t), mocks.NewMockDispatcher(t), discardLogger())
		if err := svc.DeleteDonationMessage(context.Background(), "d1", "donor@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		donations := mocks.NewMockDonationStore(t)
		donations.EXPECT().ClearMessage(mock.Anything, "d1", "donor@example.com").Return(0, nil)
		donations.EXPECT().GetByID(mock.Anything, "d1").Return(nil, nil)

		svc := NewDonationUseCase(donations, mocks.NewMockCampaignStore(t), mocks.NewMockPaymentGateway(t), mocks.NewMockDispatcher(t), discardLogger())
		err := svc.DeleteDonationMessage(context.Background(), "d1", "donor@example.com")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		donations := mocks.NewMockDonationStore(t)
		donations.EXPECT().ClearMessage(mock.Anything, "d1", "intruder@example.com").Return(0, nil)
		donations.EXPECT().GetByID(mock.Anything, "d1").
			Return(&domain.Donation{ID: "d1", DonorID: "donor@example.com"}, nil)

		svc := NewDonationUseCase(donations, mocks.NewMockCampaignStore(t), mocks.NewMockPaymentGateway(t), mocks.NewMockDispatcher(t), discardLogger())
		err := svc.DeleteDonationMessage(context.Background(), "d1", "intruder@example.com")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}
