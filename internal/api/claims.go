package api

import (
	"net/http"

	"github.com/founditapp/foundit/internal/lifecycle"
	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// ClaimsHandler handles claim endpoints, public and admin.
type ClaimsHandler struct {
	Store  store.Store
	Engine *lifecycle.Engine
}

type submitClaimRequest struct {
	ItemID        string `json:"item_id"`
	ClaimantName  string `json:"claimant_name"`
	ClaimantEmail string `json:"claimant_email"`
	ClaimantPhone string `json:"claimant_phone"`
	Description   string `json:"description"`
}

// Submit handles POST /api/claims.
func (h *ClaimsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claim, err := h.Engine.SubmitClaim(r.Context(), &model.ClaimSubmission{
		ItemID:        req.ItemID,
		ClaimantName:  req.ClaimantName,
		ClaimantEmail: req.ClaimantEmail,
		ClaimantPhone: req.ClaimantPhone,
		Description:   req.Description,
	})
	if err != nil {
		domainError(w, err, "Claim")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{
		"message": "Claim submitted successfully! We will contact you soon.",
		"id":      claim.ID,
	})
}

// AdminList handles GET /api/admin/claims: every claim with its item title
// resolved, best-effort, so the dashboard can show what is being claimed.
func (h *ClaimsHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	claims, err := h.Store.Claims().List(r.Context())
	if err != nil {
		domainError(w, err, "Claims")
		return
	}

	for i := range claims {
		item, err := h.Store.Items().Get(r.Context(), claims[i].ItemID)
		if err != nil {
			domainError(w, err, "Claims")
			return
		}
		if item != nil {
			claims[i].ItemTitle = item.Title
		} else {
			claims[i].ItemTitle = model.UnknownItemTitle
		}
	}

	if claims == nil {
		claims = []model.Claim{}
	}
	jsonResponse(w, http.StatusOK, claims)
}

// UpdateStatus handles PATCH /api/admin/claims/{id}. Approval cascades to
// the referenced item inside the lifecycle engine.
func (h *ClaimsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.Engine.UpdateClaimStatus(r.Context(), r.PathValue("id"), req.Status, req.AdminName); err != nil {
		domainError(w, err, "Claim")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Claim status updated successfully"})
}
