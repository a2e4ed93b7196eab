package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"fundhub/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the inbound usecase ports and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	campaigns     port.CampaignUseCase
	donations     port.DonationUseCase
	review        port.ReviewUseCase
	notifications port.NotificationUseCase
	logger        *slog.Logger
	router        chi.Router
}

// NewHandler creates a handler with all routes configured. Identity is
// consumed from the X-User-Id header placed there by the upstream identity
// provider; routes under requireUser reject requests without it.
func NewHandler(
	campaigns port.CampaignUseCase,
	donations port.DonationUseCase,
	review port.ReviewUseCase,
	notifications port.NotificationUseCase,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		campaigns:     campaigns,
		donations:     donations,
		review:        review,
		notifications: notifications,
		logger:        logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/donations", h.handleCampaignDonations)
		r.Get("/campaigns", h.handleCampaignsByStatus)

		r.Put("/campaigns/{id}/approve", h.handleApprove)
		r.Put("/campaigns/{id}/reject", h.handleReject)
		r.Put("/campaigns/{id}/complete", h.handleComplete)
		r.Post("/notifications", h.handleCreateNotification)
		r.Delete("/notifications/{id}", h.handleDeleteNotification)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Post("/campaigns/{id}/evidence", h.handleUploadEvidence)
			r.Post("/donations", h.handleMakeDonation)
			r.Delete("/donations/{id}/message", h.handleDeleteDonationMessage)
			r.Get("/me/campaigns", h.handleMyCampaigns)
			r.Get("/me/donations", h.handleMyDonations)
			r.Get("/me/notifications", h.handleMyNotifications)
			r.Delete("/notifications/{id}/me", h.handleDismissNotification)
			r.Put("/me/subscription", h.handleSubscribe)
			r.Delete("/me/subscription", h.handleUnsubscribe)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
