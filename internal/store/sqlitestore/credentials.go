package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/founditapp/foundit/internal/model"
)

// Credentials is the SQLite admin credential document, kept in the settings
// table under fixed keys.
type Credentials struct {
	db *sql.DB
}

// Get returns the stored credentials, or nil if none exist yet.
func (c *Credentials) Get(ctx context.Context) (*model.Credentials, error) {
	var creds model.Credentials
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'admin_username'`,
	).Scan(&creds.Username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin username: %w", err)
	}

	err = c.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'admin_password_hash'`,
	).Scan(&creds.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin password hash: %w", err)
	}
	return &creds, nil
}

// Set replaces the credential document.
func (c *Credentials) Set(ctx context.Context, creds *model.Credentials) error {
	for key, value := range map[string]string{
		"admin_username":      creds.Username,
		"admin_password_hash": creds.PasswordHash,
	} {
		_, err := c.db.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("storing %s: %w", key, err)
		}
	}
	return nil
}
