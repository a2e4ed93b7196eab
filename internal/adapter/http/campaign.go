package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"fundhub/internal/core/domain"
	"fundhub/internal/core/port"
)

type createCampaignRequest struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	TargetAmount int64      `json:"target_amount"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	cmd := port.CreateCampaignRequest{
		OwnerID:      currentUserID(r),
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
	}
	if req.StartDate != nil {
		cmd.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		cmd.EndDate = *req.EndDate
	}
	campaign, err := h.campaigns.CreateCampaign(r.Context(), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignView(campaign))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	campaign, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignView(campaign))
}

func (h *Handler) handleMyCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.CampaignsByOwner(r.Context(), currentUserID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignViews(campaigns))
}

// handleCampaignsByStatus lists campaigns in one lifecycle state, primarily
// for the review queue (?status=pending_verification).
func (h *Handler) handleCampaignsByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.CampaignStatus(r.URL.Query().Get("status"))
	campaigns, err := h.campaigns.CampaignsByStatus(r.Context(), status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignViews(campaigns))
}

type evidenceRequest struct {
	EvidenceURL string `json:"evidence_url"`
}

func (h *Handler) handleUploadEvidence(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req evidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	campaign, err := h.campaigns.UploadEvidence(r.Context(), currentUserID(r), id, req.EvidenceURL)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignView(campaign))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.campaigns.DeleteCampaign(r.Context(), currentUserID(r), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	campaign, err := h.review.Approve(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignView(campaign))
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req rejectRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
			return
		}
	}
	campaign, err := h.review.Reject(r.Context(), id, req.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignView(campaign))
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	campaign, err := h.review.Complete(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignView(campaign))
}
