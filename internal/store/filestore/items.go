package filestore

import (
	"context"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// Items is the flat-file item collection.
type Items struct {
	s *Store
}

// List returns items matching the filter.
func (c *Items) List(_ context.Context, filter store.ItemFilter) ([]model.Item, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var items []model.Item
	if err := c.s.readFile(itemsFile, &items); err != nil {
		return nil, err
	}
	return store.FilterItems(items, filter), nil
}

// Get returns an item by ID, or nil if none exists.
func (c *Items) Get(_ context.Context, id string) (*model.Item, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var items []model.Item
	if err := c.s.readFile(itemsFile, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Create appends the item to the collection.
func (c *Items) Create(_ context.Context, item *model.Item) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var items []model.Item
	if err := c.s.readFile(itemsFile, &items); err != nil {
		return err
	}
	items = append(items, *item)
	return c.s.writeFile(itemsFile, items)
}

// Update replaces the stored record with the same ID.
func (c *Items) Update(_ context.Context, item *model.Item) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var items []model.Item
	if err := c.s.readFile(itemsFile, &items); err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return c.s.writeFile(itemsFile, items)
		}
	}
	return store.ErrNotFound
}

// Delete removes the item with the given ID.
func (c *Items) Delete(_ context.Context, id string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var items []model.Item
	if err := c.s.readFile(itemsFile, &items); err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return c.s.writeFile(itemsFile, items)
		}
	}
	return store.ErrNotFound
}
