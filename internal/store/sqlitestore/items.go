package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// Items is the SQLite item collection.
type Items struct {
	db *sql.DB
}

const itemColumns = `id, title, category, location, date_found, description,
	finder_name, finder_email, finder_phone, photo, status, history, created_at`

// List returns items matching the filter. Status and category narrow the
// query; search and ordering use the shared helpers so every backend lists
// identically.
func (c *Items) List(ctx context.Context, filter store.ItemFilter) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	var args []any
	switch {
	case filter.Status != "" && filter.Status != "all":
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	case filter.Category != "" && filter.Category != "all":
		query += ` WHERE category = ?`
		args = append(args, filter.Category)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return store.FilterItems(items, filter), nil
}

// Get returns an item by ID, or nil if none exists.
func (c *Items) Get(ctx context.Context, id string) (*model.Item, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Create inserts the item.
func (c *Items) Create(ctx context.Context, item *model.Item) error {
	history, err := json.Marshal(item.History)
	if err != nil {
		return fmt.Errorf("encoding item history: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO items (id, title, category, location, date_found, description,
		     finder_name, finder_email, finder_phone, photo, status, history, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Category, item.Location, item.DateFound,
		item.Description, item.FinderName, item.FinderEmail, item.FinderPhone,
		item.Photo, item.Status, string(history), formatTime(item.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// Update replaces the stored row with the same ID.
func (c *Items) Update(ctx context.Context, item *model.Item) error {
	history, err := json.Marshal(item.History)
	if err != nil {
		return fmt.Errorf("encoding item history: %w", err)
	}
	result, err := c.db.ExecContext(ctx,
		`UPDATE items SET title = ?, category = ?, location = ?, date_found = ?,
		     description = ?, finder_name = ?, finder_email = ?, finder_phone = ?,
		     photo = ?, status = ?, history = ?
		 WHERE id = ?`,
		item.Title, item.Category, item.Location, item.DateFound,
		item.Description, item.FinderName, item.FinderEmail, item.FinderPhone,
		item.Photo, item.Status, string(history), item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return requireRow(result)
}

// Delete removes the item with the given ID.
func (c *Items) Delete(ctx context.Context, id string) error {
	result, err := c.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return requireRow(result)
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*model.Item, error) {
	var item model.Item
	var history, createdAt string
	err := s.Scan(&item.ID, &item.Title, &item.Category, &item.Location,
		&item.DateFound, &item.Description, &item.FinderName, &item.FinderEmail,
		&item.FinderPhone, &item.Photo, &item.Status, &history, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &item.History); err != nil {
		return nil, fmt.Errorf("decoding item history: %w", err)
	}
	item.CreatedAt = parseTime(createdAt)
	return &item, nil
}

// requireRow maps a zero-row mutation to store.ErrNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
