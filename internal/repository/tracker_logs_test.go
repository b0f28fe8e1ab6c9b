package repository_test

import (
	"context"
	"testing"

	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestTrackerLogRepository_SetUpserts(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTrackerLogRepository(db)
	ctx := context.Background()

	if err := repo.Set(ctx, "2026-09-01", "tmpl-1", true, ""); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := repo.Set(ctx, "2026-09-01", "tmpl-1", false, "skipped"); err != nil {
		t.Fatalf("second set: %v", err)
	}

	logs, err := repo.FindByDate(ctx, "2026-09-01")
	if err != nil {
		t.Fatalf("finding logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected a single row after two sets, got %d", len(logs))
	}
	if logs[0].Completed {
		t.Error("expected latest completed state to win")
	}
	if logs[0].Value != "skipped" {
		t.Errorf("expected latest value, got '%s'", logs[0].Value)
	}
}

func TestTrackerLogRepository_SeparateDates(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTrackerLogRepository(db)
	ctx := context.Background()

	repo.Set(ctx, "2026-09-01", "tmpl-1", true, "")
	repo.Set(ctx, "2026-09-02", "tmpl-1", true, "")

	day1, _ := repo.FindByDate(ctx, "2026-09-01")
	day2, _ := repo.FindByDate(ctx, "2026-09-02")
	if len(day1) != 1 || len(day2) != 1 {
		t.Errorf("expected one row per date, got %d and %d", len(day1), len(day2))
	}
}
