package search

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/satumenitaja/quran-reader-api/internal/quran"
)

// ErrCatalogUnavailable distinguishes "the surah list could not be loaded"
// from "the query matched nothing".
var ErrCatalogUnavailable = errors.New("surah catalog unavailable")

// SurahLister is the slice of the Quran API client the catalog service needs.
type SurahLister interface {
	ListSurahs(ctx context.Context) ([]quran.SurahMeta, error)
}

// CatalogService owns the session's surah search index. The catalog is built
// lazily from the first successful list fetch, shared read-only afterwards,
// and rebuilt in the background on a refresh interval.
type CatalogService struct {
	lister  SurahLister
	catalog atomic.Pointer[Catalog]
}

// NewCatalogService creates a catalog service backed by lister.
func NewCatalogService(lister SurahLister) *CatalogService {
	return &CatalogService{lister: lister}
}

// Catalog returns the current index, building it on first use. A fetch
// failure with no previously built catalog yields ErrCatalogUnavailable.
func (s *CatalogService) Catalog(ctx context.Context) (*Catalog, error) {
	if catalog := s.catalog.Load(); catalog != nil {
		return catalog, nil
	}
	return s.rebuild(ctx)
}

// Search runs a ranked catalog query. limit is clamped to the interactive
// caps (8 inline, 12 full page).
func (s *CatalogService) Search(ctx context.Context, rawQuery string, limit int) ([]quran.SurahMeta, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	if limit != FullPageLimit {
		limit = InlineLimit
	}
	return catalog.Search(rawQuery, limit), nil
}

// StartRefresh rebuilds the catalog on every tick until ctx is cancelled.
// A failed rebuild keeps the previous catalog.
func (s *CatalogService) StartRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("catalog refresh started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("catalog refresh stopped")
			return
		case <-ticker.C:
			if _, err := s.rebuild(ctx); err != nil {
				slog.Warn("catalog refresh failed, keeping previous index", "error", err)
			}
		}
	}
}

func (s *CatalogService) rebuild(ctx context.Context) (*Catalog, error) {
	surahs, err := s.lister.ListSurahs(ctx)
	if err != nil {
		return nil, ErrCatalogUnavailable
	}

	catalog := NewCatalog(surahs)
	s.catalog.Store(catalog)
	slog.Debug("surah catalog built", "surahs", catalog.Len())
	return catalog, nil
}
