package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
	"github.com/founditapp/foundit/internal/store/filestore"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	st, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	return &Engine{Store: st}
}

func itemSubmission() *model.ItemSubmission {
	return &model.ItemSubmission{
		Title:       "Blue Backpack",
		Category:    model.CategoryAccessories,
		Location:    "Library",
		DateFound:   "2024-02-20",
		FinderName:  "Alex",
		FinderEmail: "alex@example.com",
	}
}

func claimSubmission(itemID string) *model.ClaimSubmission {
	return &model.ClaimSubmission{
		ItemID:        itemID,
		ClaimantName:  "Sam",
		ClaimantEmail: "sam@example.com",
		Description:   "It has my initials on the strap",
	}
}

func TestSubmitItem(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, err := e.SubmitItem(ctx, itemSubmission())
	if err != nil {
		t.Fatalf("SubmitItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated ID")
	}
	if item.Status != model.ItemStatusPending {
		t.Errorf("expected pending, got %q", item.Status)
	}
	if len(item.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(item.History))
	}
	entry := item.History[0]
	if entry.Action != model.ActionFound {
		t.Errorf("expected 'found' action, got %q", entry.Action)
	}
	if entry.By != "Alex" || entry.Email != "alex@example.com" {
		t.Errorf("expected finder attribution, got %+v", entry)
	}

	stored, _ := e.Store.Items().Get(ctx, item.ID)
	if stored == nil {
		t.Fatal("expected item to be persisted")
	}
}

func TestSubmitItemValidation(t *testing.T) {
	e := newTestEngine(t)

	sub := itemSubmission()
	sub.FinderEmail = ""
	_, err := e.SubmitItem(context.Background(), sub)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !model.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	items, _ := e.Store.Items().List(context.Background(), store.ItemFilter{})
	if len(items) != 0 {
		t.Errorf("expected nothing persisted, got %d items", len(items))
	}
}

func TestSubmitClaimAppendsItemHistory(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())

	claim, err := e.SubmitClaim(ctx, claimSubmission(item.ID))
	if err != nil {
		t.Fatalf("SubmitClaim: %v", err)
	}
	if claim.Status != model.ClaimStatusPending {
		t.Errorf("expected pending claim, got %q", claim.Status)
	}

	stored, _ := e.Store.Items().Get(ctx, item.ID)
	if len(stored.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(stored.History))
	}
	if stored.History[1].Action != model.ActionClaimSubmitted {
		t.Errorf("expected claim_submitted entry, got %q", stored.History[1].Action)
	}
	if stored.Status != model.ItemStatusPending {
		t.Errorf("claim submission must not change item status, got %q", stored.Status)
	}
}

func TestSubmitClaimDanglingItem(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// Claims reference items softly; a bad ID still records the claim.
	claim, err := e.SubmitClaim(ctx, claimSubmission("no-such-item"))
	if err != nil {
		t.Fatalf("SubmitClaim: %v", err)
	}

	stored, _ := e.Store.Claims().Get(ctx, claim.ID)
	if stored == nil {
		t.Fatal("expected claim to be persisted")
	}
}

func TestUpdateItemStatusInvalid(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())

	_, err := e.UpdateItemStatus(ctx, item.ID, "archived", "admin")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	stored, _ := e.Store.Items().Get(ctx, item.ID)
	if stored.Status != model.ItemStatusPending {
		t.Errorf("rejected update must not change status, got %q", stored.Status)
	}
	if len(stored.History) != 1 {
		t.Errorf("rejected update must not append history, got %d entries", len(stored.History))
	}
}

func TestUpdateItemStatusUnknownItem(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.UpdateItemStatus(context.Background(), "no-such-item", model.ItemStatusApproved, "admin")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestApproveItemAppendsTwoEntries(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())

	updated, err := e.UpdateItemStatus(ctx, item.ID, model.ItemStatusApproved, "Morgan")
	if err != nil {
		t.Fatalf("UpdateItemStatus: %v", err)
	}
	if updated.Status != model.ItemStatusApproved {
		t.Errorf("expected approved, got %q", updated.Status)
	}

	// found + status_changed + approved
	if len(updated.History) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(updated.History))
	}
	if updated.History[1].Action != model.ActionStatusChanged {
		t.Errorf("expected status_changed, got %q", updated.History[1].Action)
	}
	if updated.History[1].Details != "Status changed from pending to approved" {
		t.Errorf("unexpected details: %q", updated.History[1].Details)
	}
	if updated.History[2].Action != model.ActionApproved {
		t.Errorf("expected approved entry, got %q", updated.History[2].Action)
	}
	if updated.History[2].By != "Morgan" {
		t.Errorf("expected admin attribution, got %q", updated.History[2].By)
	}
}

func TestRejectItemSingleEntry(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())

	updated, err := e.UpdateItemStatus(ctx, item.ID, model.ItemStatusRejected, "")
	if err != nil {
		t.Fatalf("UpdateItemStatus: %v", err)
	}
	// found + status_changed only; the extra entry is approval-specific.
	if len(updated.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(updated.History))
	}
	if updated.History[1].By != DefaultActor {
		t.Errorf("expected default actor, got %q", updated.History[1].By)
	}
}

func TestApproveClaimCascades(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())
	e.UpdateItemStatus(ctx, item.ID, model.ItemStatusApproved, "admin")
	claim, _ := e.SubmitClaim(ctx, claimSubmission(item.ID))

	updated, err := e.UpdateClaimStatus(ctx, claim.ID, model.ClaimStatusApproved, "Morgan")
	if err != nil {
		t.Fatalf("UpdateClaimStatus: %v", err)
	}
	if updated.Status != model.ClaimStatusApproved {
		t.Errorf("expected approved claim, got %q", updated.Status)
	}

	stored, _ := e.Store.Items().Get(ctx, item.ID)
	if stored.Status != model.ItemStatusClaimed {
		t.Errorf("expected item claimed after approval, got %q", stored.Status)
	}
	last := stored.History[len(stored.History)-1]
	if last.Action != model.ActionClaimed {
		t.Errorf("expected claimed entry, got %q", last.Action)
	}
	if last.Details != "Claim by Sam approved" {
		t.Errorf("unexpected details: %q", last.Details)
	}
}

func TestRejectClaimLeavesItemAlone(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())
	e.UpdateItemStatus(ctx, item.ID, model.ItemStatusApproved, "admin")
	claim, _ := e.SubmitClaim(ctx, claimSubmission(item.ID))

	if _, err := e.UpdateClaimStatus(ctx, claim.ID, model.ClaimStatusRejected, "admin"); err != nil {
		t.Fatalf("UpdateClaimStatus: %v", err)
	}

	stored, _ := e.Store.Items().Get(ctx, item.ID)
	if stored.Status != model.ItemStatusApproved {
		t.Errorf("rejection must not touch the item, got %q", stored.Status)
	}
}

func TestClaimDecisionIsFinal(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())
	claim, _ := e.SubmitClaim(ctx, claimSubmission(item.ID))

	if _, err := e.UpdateClaimStatus(ctx, claim.ID, model.ClaimStatusRejected, "admin"); err != nil {
		t.Fatalf("UpdateClaimStatus: %v", err)
	}

	_, err := e.UpdateClaimStatus(ctx, claim.ID, model.ClaimStatusApproved, "admin")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus for decided claim, got %v", err)
	}
}

func TestApproveClaimForDeletedItem(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())
	claim, _ := e.SubmitClaim(ctx, claimSubmission(item.ID))
	if err := e.Store.Items().Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Approval still succeeds; the item-side cascade is a no-op.
	updated, err := e.UpdateClaimStatus(ctx, claim.ID, model.ClaimStatusApproved, "admin")
	if err != nil {
		t.Fatalf("UpdateClaimStatus: %v", err)
	}
	if updated.Status != model.ClaimStatusApproved {
		t.Errorf("expected approved, got %q", updated.Status)
	}
}

func TestDeleteItemRemovesClaims(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	item, _ := e.SubmitItem(ctx, itemSubmission())
	other, _ := e.SubmitItem(ctx, itemSubmission())
	e.SubmitClaim(ctx, claimSubmission(item.ID))
	e.SubmitClaim(ctx, claimSubmission(item.ID))
	e.SubmitClaim(ctx, claimSubmission(other.ID))

	if err := e.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	got, _ := e.Store.Items().Get(ctx, item.ID)
	if got != nil {
		t.Error("expected item gone")
	}
	claims, _ := e.Store.Claims().List(ctx)
	if len(claims) != 1 || claims[0].ItemID != other.ID {
		t.Errorf("expected only the other item's claim to survive, got %v", claims)
	}
}

func TestDeleteUnknownItem(t *testing.T) {
	e := newTestEngine(t)

	err := e.DeleteItem(context.Background(), "no-such-item")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) Remove(url string) error {
	r.removed = append(r.removed, url)
	return nil
}

func TestDeleteItemRemovesPhoto(t *testing.T) {
	e := newTestEngine(t)
	remover := &recordingRemover{}
	e.Photos = remover
	ctx := context.Background()

	sub := itemSubmission()
	sub.Photo = "/uploads/abc.jpg"
	item, _ := e.SubmitItem(ctx, sub)

	if err := e.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if len(remover.removed) != 1 || remover.removed[0] != "/uploads/abc.jpg" {
		t.Errorf("expected photo removal, got %v", remover.removed)
	}
}
