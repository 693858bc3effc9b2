package reading

import (
	"context"
	"strings"
)

// previewLimit is the maximum rune length of a bookmark's text preview.
const previewLimit = 140

type Service struct {
	store *Store
}

func NewService(store *Store) Service {
	return Service{store: store}
}

// MakePreview collapses whitespace in verse text and truncates it to the
// preview limit, appending an ellipsis when truncated.
func MakePreview(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= previewLimit {
		return normalized
	}
	return string(runes[:previewLimit]) + "..."
}

// Toggle flips the bookmark for a verse and reports whether it is now
// present. The stored preview is derived here so callers pass raw verse text.
func (s Service) Toggle(ctx context.Context, surahNumber int, surahName string, ayahNumber int, verseText string) bool {
	return s.store.Toggle(ctx, Bookmark{
		SurahNumber: surahNumber,
		SurahName:   surahName,
		AyahNumber:  ayahNumber,
		TextPreview: MakePreview(verseText),
	})
}

// Bookmarks returns all bookmarks, newest first.
func (s Service) Bookmarks(ctx context.Context) []Bookmark {
	return s.store.List(ctx)
}

// BookmarkedAyahs returns the bookmarked ayah numbers within one surah.
func (s Service) BookmarkedAyahs(ctx context.Context, surahNumber int) map[int]bool {
	return s.store.ForSurah(ctx, surahNumber)
}

// Remove deletes a bookmark; absent bookmarks are ignored.
func (s Service) Remove(ctx context.Context, surahNumber, ayahNumber int) {
	s.store.Remove(ctx, surahNumber, ayahNumber)
}

// SetLastRead overwrites the reading position.
func (s Service) SetLastRead(ctx context.Context, surahNumber int, surahName string, ayahNumber int) {
	s.store.SetLastRead(ctx, LastRead{
		SurahNumber: surahNumber,
		SurahName:   surahName,
		AyahNumber:  ayahNumber,
	})
}

// LastRead returns the reading position or nil when never set.
func (s Service) LastRead(ctx context.Context) *LastRead {
	return s.store.LastRead(ctx)
}
