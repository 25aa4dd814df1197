package api

import (
	"net/http"

	"github.com/founditapp/foundit/internal/lifecycle"
	"github.com/founditapp/foundit/internal/match"
	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// LostItemsHandler handles lost-item report endpoints, public and admin.
type LostItemsHandler struct {
	Store   store.Store
	Engine  *lifecycle.Engine
	Matcher *match.Service
}

type submitLostRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	LocationLost string `json:"location_lost"`
	DateLost     string `json:"date_lost"`
	Description  string `json:"description"`
	OwnerName    string `json:"owner_name"`
	OwnerEmail   string `json:"owner_email"`
	OwnerPhone   string `json:"owner_phone"`
}

// Submit handles POST /api/lost-items.
func (h *LostItemsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitLostRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.Engine.SubmitLostReport(r.Context(), &model.LostSubmission{
		Title:        req.Title,
		Category:     req.Category,
		LocationLost: req.LocationLost,
		DateLost:     req.DateLost,
		Description:  req.Description,
		OwnerName:    req.OwnerName,
		OwnerEmail:   req.OwnerEmail,
		OwnerPhone:   req.OwnerPhone,
	})
	if err != nil {
		domainError(w, err, "Lost report")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{
		"message": "Lost item reported successfully! We will notify you if it turns up.",
		"id":      report.ID,
	})
}

// AdminList handles GET /api/admin/lost-items.
func (h *LostItemsHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Store.LostReports().List(r.Context())
	if err != nil {
		domainError(w, err, "Lost reports")
		return
	}
	if reports == nil {
		reports = []model.LostReport{}
	}
	jsonResponse(w, http.StatusOK, reports)
}

type matchRequest struct {
	LostItemID  string `json:"lost_item_id"`
	FoundItemID string `json:"found_item_id"`
	AdminName   string `json:"admin_name"`
}

// Match handles POST /api/admin/match-item: links a lost report to a found
// item and notifies the owner in the background.
func (h *LostItemsHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.LostItemID == "" || req.FoundItemID == "" {
		jsonError(w, http.StatusBadRequest, "lost_item_id and found_item_id required")
		return
	}

	report, err := h.Matcher.Match(r.Context(), req.LostItemID, req.FoundItemID, req.AdminName)
	if err != nil {
		domainError(w, err, "Record")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message":     "Item matched successfully! The owner has been notified.",
		"lost_report": report,
	})
}
