// Package sqlite provides a SQLite-backed implementation of the session store port.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/ports"
)

// Adapter implements the session store port for SQLite
type Adapter struct {
	db *sql.DB
}

var _ ports.SessionStore = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Load returns the stored attributes for userID, or an empty bag.
func (a *Adapter) Load(ctx context.Context, userID string) (domain.SessionAttributes, error) {
	row := a.db.QueryRowContext(ctx, "SELECT attributes FROM sessions WHERE user_id = ?", userID)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SessionAttributes{}, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	attrs := domain.SessionAttributes{}
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return attrs, nil
}

// Save overwrites the stored attributes for userID.
func (a *Adapter) Save(ctx context.Context, userID string, attrs domain.SessionAttributes) error {
	if attrs == nil {
		attrs = domain.SessionAttributes{}
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	query := `
		INSERT INTO sessions (user_id, attributes, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			attributes=excluded.attributes,
			updated_at=excluded.updated_at;
	`
	if _, err := a.db.ExecContext(ctx, query, userID, string(raw)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		user_id TEXT PRIMARY KEY,
		attributes TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := a.db.Exec(query)
	return err
}
