package store

import (
	"sort"
	"strings"

	"github.com/founditapp/foundit/internal/model"
)

// Item sort orders for listings.
const (
	SortDateFound = "date_found"
	SortCreatedAt = "created_at"
	SortTitle     = "title"
)

// ItemFilter narrows and orders an item listing. Zero values mean "all".
type ItemFilter struct {
	Status   string
	Category string
	// Search is a case-insensitive substring matched against title,
	// description and location.
	Search string
	// Sort is one of the Sort* constants; unknown values fall back to
	// date_found descending.
	Sort string
}

// FilterItems applies f to items in memory. Backends without native querying
// (flat file, document scan) share this so every store behaves identically.
func FilterItems(items []model.Item, f ItemFilter) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if f.Status != "" && f.Status != "all" && item.Status != f.Status {
			continue
		}
		if f.Category != "" && f.Category != "all" && item.Category != f.Category {
			continue
		}
		if f.Search != "" && !matchesSearch(item, f.Search) {
			continue
		}
		out = append(out, item)
	}
	SortItems(out, f.Sort)
	return out
}

func matchesSearch(item model.Item, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(item.Title), q) ||
		strings.Contains(strings.ToLower(item.Description), q) ||
		strings.Contains(strings.ToLower(item.Location), q)
}

// SortItems orders items by the given sort key, newest first for the date
// orders. The sort is stable so equal keys keep insertion order.
func SortItems(items []model.Item, key string) {
	switch key {
	case SortCreatedAt:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case SortTitle:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
	default:
		// Dates are submitter-supplied YYYY-MM-DD strings, so
		// lexicographic comparison orders them chronologically.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DateFound > items[j].DateFound
		})
	}
}

// SortClaims orders claims newest first, the admin listing order.
func SortClaims(claims []model.Claim) {
	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].CreatedAt.After(claims[j].CreatedAt)
	})
}

// SortLostReports orders lost reports newest first.
func SortLostReports(reports []model.LostReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
}
