package model

import "time"

// Item is a found-item report submitted by a finder and reviewed by an admin.
type Item struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Location    string         `json:"location"`
	DateFound   string         `json:"date_found"`
	Description string         `json:"description"`
	FinderName  string         `json:"finder_name"`
	FinderEmail string         `json:"finder_email"`
	FinderPhone string         `json:"finder_phone"`
	Photo       string         `json:"photo,omitempty"`
	Status      string         `json:"status"`
	History     []HistoryEntry `json:"history"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Item statuses.
const (
	ItemStatusPending  = "pending"
	ItemStatusApproved = "approved"
	ItemStatusRejected = "rejected"
	ItemStatusClaimed  = "claimed"
)

// ValidItemStatus reports whether s is one of the four item statuses.
func ValidItemStatus(s string) bool {
	switch s {
	case ItemStatusPending, ItemStatusApproved, ItemStatusRejected, ItemStatusClaimed:
		return true
	}
	return false
}

// Categories an item or lost report may belong to.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryAccessories = "accessories"
	CategoryBooks       = "books"
	CategorySports      = "sports"
	CategoryOther       = "other"
)

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryAccessories,
		CategoryBooks, CategorySports, CategoryOther:
		return true
	}
	return false
}

// AppendHistory adds an entry to the item's audit trail. The trail is
// append-only and never reordered.
func (i *Item) AppendHistory(e HistoryEntry) {
	i.History = append(i.History, e)
}
