package filestore

import (
	"context"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// LostReports is the flat-file lost-report collection.
type LostReports struct {
	s *Store
}

// List returns all lost reports, newest first.
func (c *LostReports) List(_ context.Context) ([]model.LostReport, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var reports []model.LostReport
	if err := c.s.readFile(lostFile, &reports); err != nil {
		return nil, err
	}
	store.SortLostReports(reports)
	return reports, nil
}

// Get returns a lost report by ID, or nil if none exists.
func (c *LostReports) Get(_ context.Context, id string) (*model.LostReport, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var reports []model.LostReport
	if err := c.s.readFile(lostFile, &reports); err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == id {
			return &reports[i], nil
		}
	}
	return nil, nil
}

// Create appends the lost report to the collection.
func (c *LostReports) Create(_ context.Context, report *model.LostReport) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var reports []model.LostReport
	if err := c.s.readFile(lostFile, &reports); err != nil {
		return err
	}
	reports = append(reports, *report)
	return c.s.writeFile(lostFile, reports)
}

// Update replaces the stored record with the same ID.
func (c *LostReports) Update(_ context.Context, report *model.LostReport) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var reports []model.LostReport
	if err := c.s.readFile(lostFile, &reports); err != nil {
		return err
	}
	for i := range reports {
		if reports[i].ID == report.ID {
			reports[i] = *report
			return c.s.writeFile(lostFile, reports)
		}
	}
	return store.ErrNotFound
}
