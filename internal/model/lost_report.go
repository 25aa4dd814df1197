package model

import "time"

// LostReport is a submission by someone who lost an item. It is independent
// of any found item until an admin matches the two.
type LostReport struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	LocationLost string     `json:"location_lost"`
	DateLost     string     `json:"date_lost"`
	Description  string     `json:"description"`
	OwnerName    string     `json:"owner_name"`
	OwnerEmail   string     `json:"owner_email"`
	OwnerPhone   string     `json:"owner_phone"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	MatchedItem  string     `json:"matched_item_id,omitempty"`
	MatchedAt    *time.Time `json:"matched_at,omitempty"`
	MatchedBy    string     `json:"matched_by,omitempty"`
}

// Lost report statuses.
const (
	LostStatusActive  = "active"
	LostStatusMatched = "matched"
)
