package store

import (
	"testing"
	"time"

	"github.com/founditapp/foundit/internal/model"
)

func sampleItems() []model.Item {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []model.Item{
		{ID: "1", Title: "Blue Backpack", Category: model.CategoryAccessories, Location: "Library",
			Description: "Navy blue, one strap torn", Status: model.ItemStatusApproved,
			DateFound: "2024-02-20", CreatedAt: base},
		{ID: "2", Title: "iPhone 13", Category: model.CategoryElectronics, Location: "Gym",
			Description: "Cracked screen", Status: model.ItemStatusApproved,
			DateFound: "2024-02-25", CreatedAt: base.Add(time.Hour)},
		{ID: "3", Title: "Red Scarf", Category: model.CategoryClothing, Location: "Cafeteria",
			Description: "Wool", Status: model.ItemStatusPending,
			DateFound: "2024-02-22", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestFilterItemsByStatus(t *testing.T) {
	out := FilterItems(sampleItems(), ItemFilter{Status: model.ItemStatusApproved})
	if len(out) != 2 {
		t.Fatalf("expected 2 approved items, got %d", len(out))
	}
	for _, item := range out {
		if item.Status != model.ItemStatusApproved {
			t.Errorf("unexpected status %q", item.Status)
		}
	}
}

func TestFilterItemsStatusAll(t *testing.T) {
	out := FilterItems(sampleItems(), ItemFilter{Status: "all"})
	if len(out) != 3 {
		t.Errorf("expected 3 items for status 'all', got %d", len(out))
	}
}

func TestFilterItemsByCategory(t *testing.T) {
	out := FilterItems(sampleItems(), ItemFilter{Category: model.CategoryElectronics})
	if len(out) != 1 || out[0].ID != "2" {
		t.Fatalf("expected only item 2, got %v", out)
	}
}

func TestFilterItemsSearch(t *testing.T) {
	// Case-insensitive, matches title, description and location.
	cases := []struct {
		query string
		want  string
	}{
		{"backpack", "1"},
		{"CRACKED", "2"},
		{"cafeteria", "3"},
	}
	for _, tc := range cases {
		out := FilterItems(sampleItems(), ItemFilter{Search: tc.query})
		if len(out) != 1 || out[0].ID != tc.want {
			t.Errorf("search %q: expected item %s, got %v", tc.query, tc.want, out)
		}
	}

	if out := FilterItems(sampleItems(), ItemFilter{Search: "unicycle"}); len(out) != 0 {
		t.Errorf("expected no matches, got %d", len(out))
	}
}

func TestSortItemsDefaultDateFound(t *testing.T) {
	items := sampleItems()
	SortItems(items, "")
	if items[0].ID != "2" || items[1].ID != "3" || items[2].ID != "1" {
		t.Errorf("expected newest date_found first, got %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestSortItemsUnknownKeyFallsBack(t *testing.T) {
	items := sampleItems()
	SortItems(items, "bogus")
	if items[0].ID != "2" {
		t.Errorf("expected date_found fallback, got %s first", items[0].ID)
	}
}

func TestSortItemsByCreatedAt(t *testing.T) {
	items := sampleItems()
	SortItems(items, SortCreatedAt)
	if items[0].ID != "3" || items[2].ID != "1" {
		t.Errorf("expected newest created first, got %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestSortItemsByTitle(t *testing.T) {
	items := sampleItems()
	SortItems(items, SortTitle)
	if items[0].Title != "Blue Backpack" {
		t.Errorf("expected 'Blue Backpack' first, got %q", items[0].Title)
	}
}

func TestSortClaimsNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	claims := []model.Claim{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(time.Minute)},
	}
	SortClaims(claims)
	if claims[0].ID != "b" {
		t.Errorf("expected newest claim first, got %s", claims[0].ID)
	}
}
