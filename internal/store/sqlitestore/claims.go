package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/founditapp/foundit/internal/model"
)

// Claims is the SQLite claim collection.
type Claims struct {
	db *sql.DB
}

const claimColumns = `id, item_id, claimant_name, claimant_email, claimant_phone,
	description, status, created_at`

// List returns all claims, newest first.
func (c *Claims) List(ctx context.Context) ([]model.Claim, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+claimColumns+` FROM claims ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	var claims []model.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, *claim)
	}
	return claims, rows.Err()
}

// Get returns a claim by ID, or nil if none exists.
func (c *Claims) Get(ctx context.Context, id string) (*model.Claim, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT `+claimColumns+` FROM claims WHERE id = ?`, id)
	claim, err := scanClaim(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// Create inserts the claim.
func (c *Claims) Create(ctx context.Context, claim *model.Claim) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO claims (id, item_id, claimant_name, claimant_email,
		     claimant_phone, description, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		claim.ID, claim.ItemID, claim.ClaimantName, claim.ClaimantEmail,
		claim.ClaimantPhone, claim.Description, claim.Status, formatTime(claim.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("creating claim: %w", err)
	}
	return nil
}

// Update replaces the stored row with the same ID.
func (c *Claims) Update(ctx context.Context, claim *model.Claim) error {
	result, err := c.db.ExecContext(ctx,
		`UPDATE claims SET item_id = ?, claimant_name = ?, claimant_email = ?,
		     claimant_phone = ?, description = ?, status = ?
		 WHERE id = ?`,
		claim.ItemID, claim.ClaimantName, claim.ClaimantEmail,
		claim.ClaimantPhone, claim.Description, claim.Status, claim.ID,
	)
	if err != nil {
		return fmt.Errorf("updating claim: %w", err)
	}
	return requireRow(result)
}

// DeleteByItem removes every claim referencing the given item.
func (c *Claims) DeleteByItem(ctx context.Context, itemID string) (int, error) {
	result, err := c.db.ExecContext(ctx, `DELETE FROM claims WHERE item_id = ?`, itemID)
	if err != nil {
		return 0, fmt.Errorf("deleting claims for item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking affected rows: %w", err)
	}
	return int(n), nil
}

func scanClaim(s scanner) (*model.Claim, error) {
	var claim model.Claim
	var createdAt string
	err := s.Scan(&claim.ID, &claim.ItemID, &claim.ClaimantName,
		&claim.ClaimantEmail, &claim.ClaimantPhone, &claim.Description,
		&claim.Status, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning claim: %w", err)
	}
	claim.CreatedAt = parseTime(createdAt)
	return &claim, nil
}
