package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/faithfullife/life-dashboard/internal/config"
	"github.com/faithfullife/life-dashboard/internal/database"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/server"
	"github.com/faithfullife/life-dashboard/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	settingsRepo := repository.NewSettingsRepository(db)
	templateRepo := repository.NewTrackerTemplateRepository(db)
	sectionRepo := repository.NewCardSectionRepository(db)
	textToolRepo := repository.NewTextToolRepository(db)

	ctx := context.Background()
	seeder := services.NewSeeder(settingsRepo, templateRepo, sectionRepo, textToolRepo)
	if err := seeder.Run(ctx); err != nil {
		slog.Error("seeding defaults", "error", err)
		os.Exit(1)
	}

	rolloverService := services.NewRolloverService(
		repository.NewTodoRepository(db),
		repository.NewTrackerLogRepository(db),
		templateRepo,
		sectionRepo,
		repository.NewSectionEntryRepository(db),
		repository.NewDailyGoalsRepository(db),
		repository.NewSnapshotRepository(db),
	)

	go runMidnightRollover(rolloverService, settingsRepo)

	srv := server.New(db, cfg, rolloverService)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// runMidnightRollover archives each day once the calendar has moved past
// it, tracking the last archived date in settings so restarts don't rerun
// or skip a day.
func runMidnightRollover(rolloverService *services.RolloverService, settingsRepo repository.SettingsRepository) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		ctx := context.Background()
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		settings, err := settingsRepo.Get(ctx)
		if err != nil {
			slog.Error("loading settings for rollover", "error", err)
		} else if settings.LastEndOfDay < yesterday {
			if err := rolloverService.Run(ctx, yesterday); err != nil {
				slog.Error("running midnight rollover", "date", yesterday, "error", err)
			} else {
				settings.LastEndOfDay = yesterday
				if err := settingsRepo.Put(ctx, settings); err != nil {
					slog.Error("recording rollover date", "error", err)
				}
			}
		}

		<-ticker.C
	}
}
