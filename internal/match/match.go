// Package match pairs a lost-item report with a found item. It is the sole
// writer of a lost report's matched fields.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/notify"
	"github.com/founditapp/foundit/internal/store"
)

// Service links lost reports to found items and requests notifications.
type Service struct {
	Store    store.Store
	Notifier notify.Notifier
}

// Match marks the lost report matched to the item and the item claimed,
// then notifies the report's owner in the background. Both records must
// exist; store.ErrNotFound is returned otherwise. The match succeeds once
// the two record updates are committed; a notification failure is only
// ever logged.
func (s *Service) Match(ctx context.Context, lostID, itemID, actor string) (*model.LostReport, error) {
	if actor == "" {
		actor = "admin"
	}

	report, err := s.Store.LostReports().Get(ctx, lostID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, store.ErrNotFound
	}

	item, err := s.Store.Items().Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, store.ErrNotFound
	}

	now := time.Now().UTC()
	report.Status = model.LostStatusMatched
	report.MatchedItem = itemID
	report.MatchedAt = &now
	report.MatchedBy = actor
	if err := s.Store.LostReports().Update(ctx, report); err != nil {
		return nil, err
	}

	item.Status = model.ItemStatusClaimed
	item.AppendHistory(model.HistoryEntry{
		Action:    model.ActionMatched,
		Timestamp: now,
		By:        actor,
		Details:   fmt.Sprintf("Matched with lost item report %q by %s", report.Title, report.OwnerName),
		Email:     report.OwnerEmail,
	})
	if err := s.Store.Items().Update(ctx, item); err != nil {
		return nil, err
	}

	slog.Info("lost report matched", "lost_report", lostID, "item", itemID, "by", actor)

	if s.Notifier != nil {
		// Fire and forget: the HTTP response never waits on delivery.
		go s.Notifier.Notify(*report, *item)
	}
	return report, nil
}
