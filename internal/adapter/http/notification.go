package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
)

type createNotificationRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	TargetType string `json:"target_type"`
	// TargetUser is the addressee email for SpecificUser targets.
	TargetUser string `json:"target_user,omitempty"`
	// TargetCampaign scopes Fundraisers and Donors targets.
	TargetCampaign int64 `json:"target_campaign,omitempty"`
}

func (h *Handler) handleCreateNotification(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	notification, err := h.notifications.CreateAndPush(r.Context(), port.PushNotificationRequest{
		Title:          req.Title,
		Content:        req.Content,
		TargetType:     domain.NotificationTarget(req.TargetType),
		TargetUser:     req.TargetUser,
		TargetCampaign: req.TargetCampaign,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toNotificationView(notification))
}

func (h *Handler) handleMyNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.NotificationsForUser(r.Context(), currentUserID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toNotificationViews(notifications))
}

func (h *Handler) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.DeleteNotification(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.DismissNotification(r.Context(), chi.URLParam(r, "id"), currentUserID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.Subscribe(r.Context(), currentUserID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.Unsubscribe(r.Context(), currentUserID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
