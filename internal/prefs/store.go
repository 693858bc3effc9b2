package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/satumenitaja/quran-reader-api/internal/database"
)

// prefsID is the fixed primary key of the singleton preferences row.
const prefsID = "reader"

// Store loads and saves the singleton preferences record. Like the bookmark
// store it is best-effort: with no backend (or a failing one) Load returns
// defaults and Save is a no-op.
type Store struct {
	db *sql.DB
}

func NewStore(dbService database.Service) *Store {
	s := &Store{}
	if dbService != nil {
		s.db = dbService.DB()
	}
	return s
}

// Load returns the persisted preferences, clamped, or the defaults when
// nothing is stored or the backend is unavailable.
func (s *Store) Load(ctx context.Context) Preferences {
	if s.db == nil {
		return Default()
	}

	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM preferences WHERE id = ?`, prefsID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Default()
	}
	if err != nil {
		slog.Debug("preferences load failed", "error", err)
		return Default()
	}

	var p Preferences
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		slog.Debug("preferences payload malformed, using defaults", "error", err)
		return Default()
	}

	return p.Clamp()
}

// Save clamps and persists the preferences, overwriting the previous record.
// Failures are swallowed.
func (s *Store) Save(ctx context.Context, p Preferences) {
	if s.db == nil {
		return
	}

	payload, err := json.Marshal(p.Clamp())
	if err != nil {
		slog.Debug("preferences marshal failed", "error", err)
		return
	}

	query := `
		INSERT INTO preferences (id, payload)
		VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload
	`
	if _, err := s.db.ExecContext(ctx, query, prefsID, string(payload)); err != nil {
		slog.Debug("preferences save failed", "error", err)
	}
}
