package sqlitestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/founditapp/foundit/internal/db"
	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewWithDB(db.NewTestDB(t))
}

func testItem(id, status string) *model.Item {
	return &model.Item{
		ID:          id,
		Title:       "Blue Backpack",
		Category:    model.CategoryAccessories,
		Location:    "Library",
		DateFound:   "2024-02-20",
		FinderName:  "Alex",
		FinderEmail: "alex@example.com",
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestItemCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item := testItem("item-1", model.ItemStatusPending)
	item.AppendHistory(model.HistoryEntry{
		Action:    model.ActionFound,
		Timestamp: time.Now().UTC(),
		By:        "Alex",
	})

	if err := s.Items().Create(ctx, item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Items().Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Title != "Blue Backpack" {
		t.Fatalf("expected stored item, got %v", got)
	}
	if len(got.History) != 1 || got.History[0].Action != model.ActionFound {
		t.Errorf("expected history to round-trip, got %v", got.History)
	}

	got.Status = model.ItemStatusApproved
	if err := s.Items().Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = s.Items().Get(ctx, "item-1")
	if got.Status != model.ItemStatusApproved {
		t.Errorf("expected approved after update, got %q", got.Status)
	}

	if err := s.Items().Delete(ctx, "item-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = s.Items().Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got != nil {
		t.Error("expected nil after delete")
	}
}

func TestMissingItemMutations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.Items().Update(ctx, testItem("nope", model.ItemStatusPending))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound from update, got %v", err)
	}

	err = s.Items().Delete(ctx, "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound from delete, got %v", err)
	}
}

func TestListItemsByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testItem("a", model.ItemStatusApproved)
	b := testItem("b", model.ItemStatusPending)
	for _, item := range []*model.Item{a, b} {
		if err := s.Items().Create(ctx, item); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	approved, err := s.Items().List(ctx, store.ItemFilter{Status: model.ItemStatusApproved})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != "a" {
		t.Errorf("expected only item a, got %v", approved)
	}

	all, _ := s.Items().List(ctx, store.ItemFilter{Status: "all"})
	if len(all) != 2 {
		t.Errorf("expected 2 items for 'all', got %d", len(all))
	}
}

func TestListItemsSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testItem("a", model.ItemStatusApproved)
	a.Title = "iPhone 13"
	a.Category = model.CategoryElectronics
	b := testItem("b", model.ItemStatusApproved)
	for _, item := range []*model.Item{a, b} {
		if err := s.Items().Create(ctx, item); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	found, err := s.Items().List(ctx, store.ItemFilter{Search: "iphone"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(found) != 1 || found[0].ID != "a" {
		t.Errorf("expected search to hit item a, got %v", found)
	}
}

func TestClaimsOrderAndCascadeDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	claims := []*model.Claim{
		{ID: "c1", ItemID: "item-1", ClaimantName: "Sam", ClaimantEmail: "sam@example.com",
			Description: "mine", Status: model.ClaimStatusPending, CreatedAt: base},
		{ID: "c2", ItemID: "item-1", ClaimantName: "Kim", ClaimantEmail: "kim@example.com",
			Description: "also mine", Status: model.ClaimStatusPending, CreatedAt: base.Add(time.Hour)},
		{ID: "c3", ItemID: "item-2", ClaimantName: "Jo", ClaimantEmail: "jo@example.com",
			Description: "other item", Status: model.ClaimStatusPending, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, claim := range claims {
		if err := s.Claims().Create(ctx, claim); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := s.Claims().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 || list[0].ID != "c3" {
		t.Fatalf("expected newest first, got %v", list)
	}

	removed, err := s.Claims().DeleteByItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("DeleteByItem: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	list, _ = s.Claims().List(ctx)
	if len(list) != 1 || list[0].ID != "c3" {
		t.Errorf("expected only c3 left, got %v", list)
	}
}

func TestLostReportMatchedFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	report := &model.LostReport{
		ID:           "lost-1",
		Title:        "Silver Watch",
		Category:     model.CategoryAccessories,
		LocationLost: "Cafeteria",
		DateLost:     "2024-02-28",
		OwnerName:    "Jo",
		OwnerEmail:   "jo@example.com",
		Status:       model.LostStatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.LostReports().Create(ctx, report); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.LostReports().Get(ctx, "lost-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.MatchedAt != nil {
		t.Errorf("expected nil matched_at before matching, got %v", got.MatchedAt)
	}

	now := time.Now().UTC()
	got.Status = model.LostStatusMatched
	got.MatchedItem = "item-1"
	got.MatchedAt = &now
	got.MatchedBy = "admin"
	if err := s.LostReports().Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ = s.LostReports().Get(ctx, "lost-1")
	if got.Status != model.LostStatusMatched || got.MatchedItem != "item-1" || got.MatchedBy != "admin" {
		t.Errorf("matched fields not persisted: %+v", got)
	}
	if got.MatchedAt == nil {
		t.Error("expected matched_at to round-trip")
	}
}

func TestCredentialsUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	creds, err := s.Credentials().Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if creds != nil {
		t.Fatalf("expected nil before bootstrap, got %v", creds)
	}

	if err := s.Credentials().Set(ctx, &model.Credentials{Username: "admin", PasswordHash: "hash1"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Credentials().Set(ctx, &model.Credentials{Username: "admin", PasswordHash: "hash2"}); err != nil {
		t.Fatalf("Set again: %v", err)
	}

	creds, _ = s.Credentials().Get(ctx)
	if creds == nil || creds.PasswordHash != "hash2" {
		t.Errorf("expected updated hash, got %v", creds)
	}
}
