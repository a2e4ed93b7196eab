package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundhub/internal/core/port"
)

type makeDonationRequest struct {
	CampaignID int64   `json:"campaign_id"`
	Amount     int64   `json:"amount"`
	Message    *string `json:"message"`
}

func (h *Handler) handleMakeDonation(w http.ResponseWriter, r *http.Request) {
	var req makeDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	donation, err := h.donations.MakeDonation(r.Context(), port.MakeDonationRequest{
		DonorID:    currentUserID(r),
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Message:    req.Message,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toDonationView(donation))
}

func (h *Handler) handleDeleteDonationMessage(w http.ResponseWriter, r *http.Request) {
	donationID := chi.URLParam(r, "id")
	if err := h.donations.DeleteDonationMessage(r.Context(), donationID, currentUserID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCampaignDonations(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	donations, err := h.donations.DonationsByCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDonationViews(donations))
}

func (h *Handler) handleMyDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donations.DonationsByDonor(r.Context(), currentUserID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDonationViews(donations))
}
