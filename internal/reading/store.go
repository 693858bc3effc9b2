package reading

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/satumenitaja/quran-reader-api/internal/database"
)

// Store persists bookmarks and the last-read position in the embedded
// database. Persistence is best-effort by design: when the database could not
// be opened or an operation fails, reads return empty results and writes
// become no-ops, so the reading experience never hard-fails on storage.
type Store struct {
	db  *sql.DB
	now func() int64
}

// NewStore creates a store over dbService. A nil dbService produces a
// fully functional no-op store.
func NewStore(dbService database.Service) *Store {
	s := &Store{
		now: func() int64 { return time.Now().UnixMilli() },
	}
	if dbService != nil {
		s.db = dbService.DB()
	}
	return s
}

// Available reports whether a persistence backend is present.
func (s *Store) Available() bool {
	return s.db != nil
}

// List returns all bookmarks, newest first. An unavailable or failing backend
// yields an empty list, not an error.
func (s *Store) List(ctx context.Context) []Bookmark {
	if s.db == nil {
		return []Bookmark{}
	}

	query := `
		SELECT id, surah_number, surah_name, ayah_number, text_preview, created_at
		FROM bookmarks
		ORDER BY created_at DESC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		slog.Debug("bookmark list failed", "error", err)
		return []Bookmark{}
	}
	defer rows.Close()

	bookmarks := []Bookmark{}
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.SurahNumber, &b.SurahName, &b.AyahNumber, &b.TextPreview, &b.CreatedAt); err != nil {
			slog.Debug("bookmark scan failed", "error", err)
			return []Bookmark{}
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		slog.Debug("bookmark iteration failed", "error", err)
		return []Bookmark{}
	}

	return bookmarks
}

// ForSurah returns the set of bookmarked ayah numbers within one surah.
func (s *Store) ForSurah(ctx context.Context, surahNumber int) map[int]bool {
	ayahs := map[int]bool{}
	for _, b := range s.List(ctx) {
		if b.SurahNumber == surahNumber {
			ayahs[b.AyahNumber] = true
		}
	}
	return ayahs
}

// Upsert writes a bookmark under its composite key with a fresh creation
// timestamp, replacing any existing record for that verse. Failures are
// swallowed.
func (s *Store) Upsert(ctx context.Context, b Bookmark) {
	if s.db == nil {
		return
	}

	b.ID = BookmarkID(b.SurahNumber, b.AyahNumber)
	b.CreatedAt = s.now()

	query := `
		INSERT INTO bookmarks (id, surah_number, surah_name, ayah_number, text_preview, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			surah_name = excluded.surah_name,
			text_preview = excluded.text_preview,
			created_at = excluded.created_at
	`

	if _, err := s.db.ExecContext(ctx, query,
		b.ID, b.SurahNumber, b.SurahName, b.AyahNumber, b.TextPreview, b.CreatedAt,
	); err != nil {
		slog.Debug("bookmark upsert failed", "id", b.ID, "error", err)
	}
}

// Remove deletes the bookmark for a verse. Removing an absent bookmark is not
// an error.
func (s *Store) Remove(ctx context.Context, surahNumber, ayahNumber int) {
	if s.db == nil {
		return
	}

	id := BookmarkID(surahNumber, ayahNumber)
	if _, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id); err != nil {
		slog.Debug("bookmark remove failed", "id", id, "error", err)
	}
}

// Toggle flips the bookmark for a verse and reports whether it is now
// present. The existence check and the resulting write run in one
// transaction, so two toggles on the same key cannot interleave between check
// and write.
func (s *Store) Toggle(ctx context.Context, b Bookmark) bool {
	if s.db == nil {
		return false
	}

	id := BookmarkID(b.SurahNumber, b.AyahNumber)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Debug("bookmark toggle failed to start", "id", id, "error", err)
		return false
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookmarks WHERE id = ?)`, id,
	).Scan(&exists)
	if err != nil {
		slog.Debug("bookmark toggle check failed", "id", id, "error", err)
		return false
	}

	if exists {
		if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id); err != nil {
			slog.Debug("bookmark toggle delete failed", "id", id, "error", err)
			return false
		}
		if err := tx.Commit(); err != nil {
			slog.Debug("bookmark toggle commit failed", "id", id, "error", err)
			return false
		}
		return false
	}

	query := `
		INSERT INTO bookmarks (id, surah_number, surah_name, ayah_number, text_preview, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		id, b.SurahNumber, b.SurahName, b.AyahNumber, b.TextPreview, s.now(),
	); err != nil {
		slog.Debug("bookmark toggle insert failed", "id", id, "error", err)
		return false
	}
	if err := tx.Commit(); err != nil {
		slog.Debug("bookmark toggle commit failed", "id", id, "error", err)
		return false
	}
	return true
}

// SetLastRead overwrites the singleton reading position with a fresh update
// timestamp. Failures are swallowed.
func (s *Store) SetLastRead(ctx context.Context, lr LastRead) {
	if s.db == nil {
		return
	}

	query := `
		INSERT INTO meta (id, surah_number, surah_name, ayah_number, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			surah_number = excluded.surah_number,
			surah_name = excluded.surah_name,
			ayah_number = excluded.ayah_number,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query,
		lastReadID, lr.SurahNumber, lr.SurahName, lr.AyahNumber, s.now(),
	); err != nil {
		slog.Debug("last-read save failed", "error", err)
	}
}

// LastRead returns the reading position, or nil when never set or the backend
// is unavailable.
func (s *Store) LastRead(ctx context.Context) *LastRead {
	if s.db == nil {
		return nil
	}

	query := `
		SELECT surah_number, surah_name, ayah_number, updated_at
		FROM meta
		WHERE id = ?
	`

	var lr LastRead
	err := s.db.QueryRowContext(ctx, query, lastReadID).Scan(
		&lr.SurahNumber, &lr.SurahName, &lr.AyahNumber, &lr.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		slog.Debug("last-read load failed", "error", err)
		return nil
	}
	return &lr
}
