package model

import "time"

// Claim is a request by a purported owner to receive a specific item.
// ItemID is a soft reference: the item may have been deleted since.
type Claim struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	ClaimantName  string    `json:"claimant_name"`
	ClaimantEmail string    `json:"claimant_email"`
	ClaimantPhone string    `json:"claimant_phone"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`

	// ItemTitle is resolved for admin listings, never persisted.
	ItemTitle string `json:"item_title,omitempty"`
}

// Claim statuses.
const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

// ValidClaimStatus reports whether s is one of the three claim statuses.
func ValidClaimStatus(s string) bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

// UnknownItemTitle is used when a claim references a deleted item.
const UnknownItemTitle = "Unknown Item"
