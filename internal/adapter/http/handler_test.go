package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
	"fundhub/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockCampaignUseCase, *mocks.MockDonationUseCase, *mocks.MockReviewUseCase, *mocks.MockNotificationUseCase) {
	campaigns := mocks.NewMockCampaignUseCase(t)
	donations := mocks.NewMockDonationUseCase(t)
	review := mocks.NewMockReviewUseCase(t)
	notifications := mocks.NewMockNotificationUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(campaigns, donations, review, notifications, logger), campaigns, donations, review, notifications
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

// TestErrorMapping verifies the {"error": message} contract across the whole
// error taxonomy.
func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", domain.NotFoundf("Campaign not found"), http.StatusNotFound, "Campaign not found"},
		{"validation", domain.Validationf("Target amount must be positive"), http.StatusBadRequest, "Target amount must be positive"},
		{"invalid operation", domain.InvalidOperationf("Cannot reject an active campaign"), http.StatusBadRequest, "Cannot reject an active campaign"},
		{"forbidden", domain.Forbiddenf("You cannot delete this donation message"), http.StatusForbidden, "You cannot delete this donation message"},
		{"storage", domain.StorageError(io.ErrUnexpectedEOF), http.StatusServiceUnavailable, "service temporarily unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, campaigns, _, _, _ := newTestHandler(t)
			campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(domain.Campaign{}, tc.err)

			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/1", nil))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", rec.Code, tc.wantStatus)
			}
			if got := decodeError(t, rec); got != tc.wantBody {
				t.Fatalf("error body %q, want %q", got, tc.wantBody)
			}
		})
	}
}

// TestRequireUser rejects protected routes without the identity header.
func TestRequireUser(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me/campaigns", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}

// TestMakeDonationEndpoint passes the caller's identity and body through to
// the usecase and returns 201.
func TestMakeDonationEndpoint(t *testing.T) {
	h, _, donations, _, _ := newTestHandler(t)

	donations.EXPECT().
		MakeDonation(mock.Anything, port.MakeDonationRequest{
			DonorID:    "donor@example.com",
			CampaignID: 7,
			Amount:     250,
		}).
		Return(domain.Donation{ID: "d1", DonorID: "donor@example.com", CampaignID: 7, Amount: 250}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations",
		strings.NewReader(`{"campaign_id": 7, "amount": 250}`))
	req.Header.Set("X-User-Id", "donor@example.com")

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var view donationView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.ID != "d1" || view.Amount != 250 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

// TestRejectEndpoint forwards the optional reason.
func TestRejectEndpoint(t *testing.T) {
	h, _, _, review, _ := newTestHandler(t)

	review.EXPECT().Reject(mock.Anything, int64(3), "spam").
		Return(domain.Campaign{ID: 3, Status: domain.StatusRejected}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/campaigns/3/reject",
		strings.NewReader(`{"reason": "spam"}`))

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

// TestRejectEndpointNoBody treats a missing body as an empty reason.
func TestRejectEndpointNoBody(t *testing.T) {
	h, _, _, review, _ := newTestHandler(t)

	review.EXPECT().Reject(mock.Anything, int64(3), "").
		Return(domain.Campaign{ID: 3, Status: domain.StatusRejected}, nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/campaigns/3/reject", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

// TestInvalidCampaignID rejects non-numeric path ids before hitting any
// usecase.
func TestInvalidCampaignID(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	if got := decodeError(t, rec); got != "Invalid campaign id" {
		t.Fatalf("error body %q", got)
	}
}

// TestCreateNotificationEndpoint maps the admin request onto the usecase
// command.
func TestCreateNotificationEndpoint(t *testing.T) {
	h, _, _, _, notifications := newTestHandler(t)

	notifications.EXPECT().
		CreateAndPush(mock.Anything, port.PushNotificationRequest{
			Title:      "Maintenance",
			Content:    "Back soon",
			TargetType: domain.TargetAllUsers,
		}).
		Return(domain.Notification{ID: "n1", Title: "Maintenance", TargetType: domain.TargetAllUsers}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications",
		strings.NewReader(`{"title": "Maintenance", "content": "Back soon", "target_type": "AllUsers"}`))

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

// TestDismissNotificationEndpoint removes the caller's own feed entry.
func TestDismissNotificationEndpoint(t *testing.T) {
	h, _, _, _, notifications := newTestHandler(t)

	notifications.EXPECT().DismissNotification(mock.Anything, "n1", "user@example.com").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/notifications/n1/me", nil)
	req.Header.Set("X-User-Id", "user@example.com")

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204: %s", rec.Code, rec.Body.String())
	}
}
