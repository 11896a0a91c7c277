// Command cleanup removes staged media uploads older than the configured
// TTL. Staged files that were never attached to a record or a profile are
// otherwise kept forever. It is intended to be invoked by an external cron
// job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/media"
	"github.com/heartmarshall/growthbox-backend/internal/app"
	"github.com/heartmarshall/growthbox-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := media.NewFSStore(logger, cfg.Media)
	if err != nil {
		logger.Error("open media store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cutoff := time.Now().Add(-cfg.Media.StagedTTL)

	removed, err := store.SweepStaged(ctx, cutoff)
	if err != nil {
		logger.Error("staged media sweep failed",
			slog.String("error", err.Error()),
			slog.Int("removed", removed),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("staged media sweep completed",
		slog.Int("removed", removed),
		slog.Time("cutoff", cutoff),
	)
}
