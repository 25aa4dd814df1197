package api

import (
	"net/http"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// StatsHandler serves the aggregate dashboard counts.
type StatsHandler struct {
	Store store.Store
}

// Get handles GET /api/stats and GET /api/admin/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.Items().List(r.Context(), store.ItemFilter{})
	if err != nil {
		domainError(w, err, "Stats")
		return
	}
	claims, err := h.Store.Claims().List(r.Context())
	if err != nil {
		domainError(w, err, "Stats")
		return
	}
	reports, err := h.Store.LostReports().List(r.Context())
	if err != nil {
		domainError(w, err, "Stats")
		return
	}

	stats := map[string]int{
		"totalItems":       len(items),
		"pendingItems":     0,
		"approvedItems":    0,
		"claimedItems":     0,
		"pendingClaims":    0,
		"activeLostItems":  0,
		"matchedLostItems": 0,
	}
	for _, item := range items {
		switch item.Status {
		case model.ItemStatusPending:
			stats["pendingItems"]++
		case model.ItemStatusApproved:
			stats["approvedItems"]++
		case model.ItemStatusClaimed:
			stats["claimedItems"]++
		}
	}
	for _, claim := range claims {
		if claim.Status == model.ClaimStatusPending {
			stats["pendingClaims"]++
		}
	}
	for _, report := range reports {
		switch report.Status {
		case model.LostStatusActive:
			stats["activeLostItems"]++
		case model.LostStatusMatched:
			stats["matchedLostItems"]++
		}
	}

	jsonResponse(w, http.StatusOK, stats)
}
