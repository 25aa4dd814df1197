package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/founditapp/foundit/internal/model"
)

// LostReports is the SQLite lost-report collection.
type LostReports struct {
	db *sql.DB
}

const lostColumns = `id, title, category, location_lost, date_lost, description,
	owner_name, owner_email, owner_phone, status, created_at, matched_item_id,
	matched_at, matched_by`

// List returns all lost reports, newest first.
func (c *LostReports) List(ctx context.Context) ([]model.LostReport, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+lostColumns+` FROM lost_reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing lost reports: %w", err)
	}
	defer rows.Close()

	var reports []model.LostReport
	for rows.Next() {
		report, err := scanLostReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

// Get returns a lost report by ID, or nil if none exists.
func (c *LostReports) Get(ctx context.Context, id string) (*model.LostReport, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT `+lostColumns+` FROM lost_reports WHERE id = ?`, id)
	report, err := scanLostReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Create inserts the lost report.
func (c *LostReports) Create(ctx context.Context, report *model.LostReport) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO lost_reports (id, title, category, location_lost, date_lost,
		     description, owner_name, owner_email, owner_phone, status, created_at,
		     matched_item_id, matched_at, matched_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID, report.Title, report.Category, report.LocationLost,
		report.DateLost, report.Description, report.OwnerName, report.OwnerEmail,
		report.OwnerPhone, report.Status, formatTime(report.CreatedAt),
		report.MatchedItem, nullableTime(report.MatchedAt), report.MatchedBy,
	)
	if err != nil {
		return fmt.Errorf("creating lost report: %w", err)
	}
	return nil
}

// Update replaces the stored row with the same ID.
func (c *LostReports) Update(ctx context.Context, report *model.LostReport) error {
	result, err := c.db.ExecContext(ctx,
		`UPDATE lost_reports SET title = ?, category = ?, location_lost = ?,
		     date_lost = ?, description = ?, owner_name = ?, owner_email = ?,
		     owner_phone = ?, status = ?, matched_item_id = ?, matched_at = ?,
		     matched_by = ?
		 WHERE id = ?`,
		report.Title, report.Category, report.LocationLost, report.DateLost,
		report.Description, report.OwnerName, report.OwnerEmail, report.OwnerPhone,
		report.Status, report.MatchedItem, nullableTime(report.MatchedAt),
		report.MatchedBy, report.ID,
	)
	if err != nil {
		return fmt.Errorf("updating lost report: %w", err)
	}
	return requireRow(result)
}

func scanLostReport(s scanner) (*model.LostReport, error) {
	var report model.LostReport
	var createdAt string
	var matchedAt sql.NullString
	err := s.Scan(&report.ID, &report.Title, &report.Category, &report.LocationLost,
		&report.DateLost, &report.Description, &report.OwnerName, &report.OwnerEmail,
		&report.OwnerPhone, &report.Status, &createdAt, &report.MatchedItem,
		&matchedAt, &report.MatchedBy)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning lost report: %w", err)
	}
	report.CreatedAt = parseTime(createdAt)
	if matchedAt.Valid && matchedAt.String != "" {
		t := parseTime(matchedAt.String)
		report.MatchedAt = &t
	}
	return &report, nil
}

// nullableTime renders an optional timestamp, NULL when unset.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}
