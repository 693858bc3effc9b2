package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/satumenitaja/quran-reader-api/internal/database"
	"github.com/satumenitaja/quran-reader-api/internal/server"
	"github.com/satumenitaja/quran-reader-api/pkg/config"
)

func main() {
	cfg := config.LoadConfig()
	setupLogger(cfg)

	db, err := database.New(cfg.DBPath)
	if err != nil {
		// Persistence is best-effort: the reader must keep working with
		// empty reads and no-op writes when the store cannot open.
		slog.Warn("running without persistence", "path", cfg.DBPath, "error", err)
		db = nil
	}

	srv, err := server.NewServer(db, cfg)
	if err != nil {
		slog.Error("failed to construct server", "error", err)
		os.Exit(1)
	}

	srv.StartBackgroundJobs()
	defer srv.StopBackgroundJobs()

	httpServer := srv.HTTPServer()

	go func() {
		slog.Info("server listening", "addr", httpServer.Addr, "env", cfg.AppEnv)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	if db != nil {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close reader database", "error", err)
		}
	}
}

// setupLogger installs the default slog logger: JSON in production, text
// elsewhere.
func setupLogger(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
