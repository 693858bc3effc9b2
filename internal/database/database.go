// Package database opens and manages the embedded SQLite database that backs
// reader state (bookmarks, last-read position, preferences).
//
// The pure Go driver (modernc.org/sqlite) keeps the binary free of CGO so the
// reader works anywhere the binary runs, with no external database process.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Service interface {
	DB() *sql.DB
	Health() map[string]string
	Close() error
}

type service struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id           TEXT PRIMARY KEY,
	surah_number INTEGER NOT NULL,
	surah_name   TEXT NOT NULL,
	ayah_number  INTEGER NOT NULL,
	text_preview TEXT NOT NULL,
	created_at   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookmarks_created_at ON bookmarks (created_at);

CREATE TABLE IF NOT EXISTS meta (
	id           TEXT PRIMARY KEY,
	surah_number INTEGER NOT NULL,
	surah_name   TEXT NOT NULL,
	ayah_number  INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS preferences (
	id      TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);
`

// New opens (creating if needed) the reader database at path and applies the
// schema. The returned service is safe for concurrent use; SQLite serializes
// writers, which is what gives bookmark toggles their per-key atomicity.
func New(path string) (Service, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open reader database: %w", err)
	}

	// A single connection avoids SQLITE_BUSY between concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply reader schema: %w", err)
	}

	return &service{db: db, path: path}, nil
}

func (s *service) DB() *sql.DB {
	return s.db
}

func (s *service) Health() map[string]string {
	stats := map[string]string{
		"path": s.path,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = err.Error()
		return stats
	}

	stats["status"] = "up"
	return stats
}

func (s *service) Close() error {
	return s.db.Close()
}
