package filestore

import (
	"context"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// Claims is the flat-file claim collection.
type Claims struct {
	s *Store
}

// List returns all claims, newest first.
func (c *Claims) List(_ context.Context) ([]model.Claim, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var claims []model.Claim
	if err := c.s.readFile(claimsFile, &claims); err != nil {
		return nil, err
	}
	store.SortClaims(claims)
	return claims, nil
}

// Get returns a claim by ID, or nil if none exists.
func (c *Claims) Get(_ context.Context, id string) (*model.Claim, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var claims []model.Claim
	if err := c.s.readFile(claimsFile, &claims); err != nil {
		return nil, err
	}
	for i := range claims {
		if claims[i].ID == id {
			return &claims[i], nil
		}
	}
	return nil, nil
}

// Create appends the claim to the collection.
func (c *Claims) Create(_ context.Context, claim *model.Claim) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var claims []model.Claim
	if err := c.s.readFile(claimsFile, &claims); err != nil {
		return err
	}
	claims = append(claims, *claim)
	return c.s.writeFile(claimsFile, claims)
}

// Update replaces the stored record with the same ID.
func (c *Claims) Update(_ context.Context, claim *model.Claim) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var claims []model.Claim
	if err := c.s.readFile(claimsFile, &claims); err != nil {
		return err
	}
	for i := range claims {
		if claims[i].ID == claim.ID {
			claims[i] = *claim
			return c.s.writeFile(claimsFile, claims)
		}
	}
	return store.ErrNotFound
}

// DeleteByItem removes every claim referencing the given item.
func (c *Claims) DeleteByItem(_ context.Context, itemID string) (int, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var claims []model.Claim
	if err := c.s.readFile(claimsFile, &claims); err != nil {
		return 0, err
	}

	kept := claims[:0]
	removed := 0
	for _, claim := range claims {
		if claim.ItemID == itemID {
			removed++
			continue
		}
		kept = append(kept, claim)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, c.s.writeFile(claimsFile, kept)
}
