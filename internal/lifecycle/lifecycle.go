// Package lifecycle centralizes every status mutation and history append
// for items and claims. Handlers never set a status directly; an item can
// only become "claimed" through an approved claim or a completed match.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// ErrInvalidStatus is returned when a status update names a value outside
// the legal set. No change is made.
var ErrInvalidStatus = errors.New("invalid status")

// PhotoRemover deletes a stored photo by its relative URL.
type PhotoRemover interface {
	Remove(url string) error
}

// Engine applies the item and claim status machines over a store.
type Engine struct {
	Store  store.Store
	Photos PhotoRemover
}

// DefaultActor is recorded when an admin action carries no name.
const DefaultActor = "admin"

// SubmitItem validates and persists a public found-item report. The new
// item is pending with a single "found" history entry.
func (e *Engine) SubmitItem(ctx context.Context, sub *model.ItemSubmission) (*model.Item, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &model.Item{
		ID:          uuid.NewString(),
		Title:       sub.Title,
		Category:    sub.Category,
		Location:    sub.Location,
		DateFound:   sub.DateFound,
		Description: sub.Description,
		FinderName:  sub.FinderName,
		FinderEmail: sub.FinderEmail,
		FinderPhone: sub.FinderPhone,
		Photo:       sub.Photo,
		Status:      model.ItemStatusPending,
		CreatedAt:   now,
	}
	item.AppendHistory(model.HistoryEntry{
		Action:    model.ActionFound,
		Timestamp: now,
		By:        sub.FinderName,
		Details:   fmt.Sprintf("Item reported as found at %s", sub.Location),
		Email:     sub.FinderEmail,
	})

	if err := e.Store.Items().Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SubmitClaim validates and persists a public claim. When the referenced
// item exists, a "claim_submitted" entry is appended to it; a dangling
// item_id still creates the claim without error.
func (e *Engine) SubmitClaim(ctx context.Context, sub *model.ClaimSubmission) (*model.Claim, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	claim := &model.Claim{
		ID:            uuid.NewString(),
		ItemID:        sub.ItemID,
		ClaimantName:  sub.ClaimantName,
		ClaimantEmail: sub.ClaimantEmail,
		ClaimantPhone: sub.ClaimantPhone,
		Description:   sub.Description,
		Status:        model.ClaimStatusPending,
		CreatedAt:     now,
	}
	if err := e.Store.Claims().Create(ctx, claim); err != nil {
		return nil, err
	}

	item, err := e.Store.Items().Get(ctx, sub.ItemID)
	if err != nil {
		slog.Error("failed to load item for claim history", "item", sub.ItemID, "error", err)
		return claim, nil
	}
	if item != nil {
		item.AppendHistory(model.HistoryEntry{
			Action:    model.ActionClaimSubmitted,
			Timestamp: now,
			By:        sub.ClaimantName,
			Details:   "Ownership claim submitted",
			Email:     sub.ClaimantEmail,
		})
		if err := e.Store.Items().Update(ctx, item); err != nil {
			slog.Error("failed to append claim history", "item", item.ID, "error", err)
		}
	}
	return claim, nil
}

// SubmitLostReport validates and persists a public lost-item report.
func (e *Engine) SubmitLostReport(ctx context.Context, sub *model.LostSubmission) (*model.LostReport, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	report := &model.LostReport{
		ID:           uuid.NewString(),
		Title:        sub.Title,
		Category:     sub.Category,
		LocationLost: sub.LocationLost,
		DateLost:     sub.DateLost,
		Description:  sub.Description,
		OwnerName:    sub.OwnerName,
		OwnerEmail:   sub.OwnerEmail,
		OwnerPhone:   sub.OwnerPhone,
		Status:       model.LostStatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.Store.LostReports().Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// UpdateItemStatus applies an admin-driven item status change. Returns
// ErrInvalidStatus for values outside the legal set, store.ErrNotFound for
// an unknown item.
func (e *Engine) UpdateItemStatus(ctx context.Context, id, status, admin string) (*model.Item, error) {
	if !model.ValidItemStatus(status) {
		return nil, ErrInvalidStatus
	}
	if admin == "" {
		admin = DefaultActor
	}

	item, err := e.Store.Items().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, store.ErrNotFound
	}

	previous := item.Status
	now := time.Now().UTC()
	item.Status = status
	item.AppendHistory(model.HistoryEntry{
		Action:    model.ActionStatusChanged,
		Timestamp: now,
		By:        admin,
		Details:   fmt.Sprintf("Status changed from %s to %s", previous, status),
	})
	if previous == model.ItemStatusPending && status == model.ItemStatusApproved {
		item.AppendHistory(model.HistoryEntry{
			Action:    model.ActionApproved,
			Timestamp: now,
			By:        admin,
			Details:   "Item approved and published",
		})
	}

	if err := e.Store.Items().Update(ctx, item); err != nil {
		return nil, err
	}
	slog.Info("item status updated", "item", id, "from", previous, "to", status, "by", admin)
	return item, nil
}

// UpdateClaimStatus applies an admin-driven claim status change. Claims only
// transition out of pending. Approval cascades to the referenced item: it
// becomes claimed with a "claimed" history entry; a deleted item is a
// silent no-op on the item side.
func (e *Engine) UpdateClaimStatus(ctx context.Context, id, status, admin string) (*model.Claim, error) {
	if !model.ValidClaimStatus(status) {
		return nil, ErrInvalidStatus
	}
	if admin == "" {
		admin = DefaultActor
	}

	claim, err := e.Store.Claims().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, store.ErrNotFound
	}
	if claim.Status != model.ClaimStatusPending {
		// No transition out of approved or rejected.
		return nil, ErrInvalidStatus
	}

	claim.Status = status
	if err := e.Store.Claims().Update(ctx, claim); err != nil {
		return nil, err
	}

	if status == model.ClaimStatusApproved {
		if err := e.markItemClaimed(ctx, claim, admin); err != nil {
			slog.Error("failed to cascade claim approval to item", "claim", id, "item", claim.ItemID, "error", err)
		}
	}
	slog.Info("claim status updated", "claim", id, "to", status, "by", admin)
	return claim, nil
}

// markItemClaimed is the claim-approval cascade.
func (e *Engine) markItemClaimed(ctx context.Context, claim *model.Claim, admin string) error {
	item, err := e.Store.Items().Get(ctx, claim.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		// Item was deleted after the claim was filed.
		return nil
	}

	item.Status = model.ItemStatusClaimed
	item.AppendHistory(model.HistoryEntry{
		Action:    model.ActionClaimed,
		Timestamp: time.Now().UTC(),
		By:        admin,
		Details:   fmt.Sprintf("Claim by %s approved", claim.ClaimantName),
		Email:     claim.ClaimantEmail,
	})
	return e.Store.Items().Update(ctx, item)
}

// DeleteItem removes an item, every claim referencing it, and its stored
// photo. The photo removal is best-effort.
func (e *Engine) DeleteItem(ctx context.Context, id string) error {
	item, err := e.Store.Items().Get(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return store.ErrNotFound
	}

	removed, err := e.Store.Claims().DeleteByItem(ctx, id)
	if err != nil {
		return err
	}
	if err := e.Store.Items().Delete(ctx, id); err != nil {
		return err
	}

	if item.Photo != "" && e.Photos != nil {
		if err := e.Photos.Remove(item.Photo); err != nil {
			slog.Error("failed to remove item photo", "item", id, "photo", item.Photo, "error", err)
		}
	}

	slog.Info("item deleted", "item", id, "claims_removed", removed)
	return nil
}
