package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/satumenitaja/quran-reader-api/internal/database"
	"github.com/satumenitaja/quran-reader-api/internal/prefs"
	"github.com/satumenitaja/quran-reader-api/internal/quran"
	"github.com/satumenitaja/quran-reader-api/internal/reading"
	"github.com/satumenitaja/quran-reader-api/internal/search"
	"github.com/satumenitaja/quran-reader-api/pkg/config"
)

type Server struct {
	port    string
	db      database.Service
	cfg     *config.Config
	handler http.Handler

	quranClient    *quran.Client
	catalogService *search.CatalogService
	readingService reading.Service
	prefsStore     *prefs.Store

	cancel context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected. db may
// be nil: the reader then runs without persistence, with bookmark and
// last-read operations degrading to no-ops.
func NewServer(db database.Service, cfg *config.Config) (*Server, error) {
	if db != nil {
		stats := db.Health()
		if stats["status"] != "up" {
			slog.Warn("reader database unhealthy, continuing without persistence", "error", stats["error"])
			db = nil
		} else {
			slog.Info("reader database ready", "path", stats["path"])
		}
	}

	quranClient, err := quran.NewClient(cfg.QuranAPIBaseURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create quran api client: %w", err)
	}

	s := &Server{
		port:           cfg.Port,
		db:             db,
		cfg:            cfg,
		quranClient:    quranClient,
		catalogService: search.NewCatalogService(quranClient),
		readingService: reading.NewService(reading.NewStore(db)),
		prefsStore:     prefs.NewStore(db),
	}

	s.handler = s.RegisterRoutes()
	return s, nil
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs launches the periodic surah catalog refresh.
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.catalogService.StartRefresh(ctx, s.cfg.CatalogRefreshTime)
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		slog.Info("background jobs stopped gracefully")
	}
}
