package store

import (
	"context"
	"errors"

	"github.com/founditapp/foundit/internal/model"
)

// ErrNotFound is returned by Update and Delete when no record has the given
// ID. Get returns (nil, nil) instead so callers can distinguish a miss from
// an I/O failure.
var ErrNotFound = errors.New("record not found")

// ItemStore persists found-item reports.
type ItemStore interface {
	List(ctx context.Context, filter ItemFilter) ([]model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	Create(ctx context.Context, item *model.Item) error
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id string) error
}

// ClaimStore persists claims against found items.
type ClaimStore interface {
	List(ctx context.Context) ([]model.Claim, error)
	Get(ctx context.Context, id string) (*model.Claim, error)
	Create(ctx context.Context, claim *model.Claim) error
	Update(ctx context.Context, claim *model.Claim) error
	// DeleteByItem removes every claim referencing the given item and
	// returns how many were removed.
	DeleteByItem(ctx context.Context, itemID string) (int, error)
}

// LostReportStore persists lost-item reports.
type LostReportStore interface {
	List(ctx context.Context) ([]model.LostReport, error)
	Get(ctx context.Context, id string) (*model.LostReport, error)
	Create(ctx context.Context, report *model.LostReport) error
	Update(ctx context.Context, report *model.LostReport) error
}

// CredentialStore persists the single admin credential document.
type CredentialStore interface {
	Get(ctx context.Context) (*model.Credentials, error)
	Set(ctx context.Context, creds *model.Credentials) error
}

// Store is the full persistence backend. Implementations are interchangeable
// and selected once at startup; each mutation is fully applied or not
// applied, with no multi-collection transactions.
type Store interface {
	Items() ItemStore
	Claims() ClaimStore
	LostReports() LostReportStore
	Credentials() CredentialStore
	Close() error
}
