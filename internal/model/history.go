package model

import "time"

// HistoryEntry is one immutable audit record attached to an item.
type HistoryEntry struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	By        string    `json:"by"`
	Details   string    `json:"details,omitempty"`
	Email     string    `json:"email,omitempty"`
}

// History actions.
const (
	ActionFound          = "found"
	ActionStatusChanged  = "status_changed"
	ActionApproved       = "approved"
	ActionClaimSubmitted = "claim_submitted"
	ActionClaimed        = "claimed"
	ActionMatched        = "matched_with_lost_item"
)
