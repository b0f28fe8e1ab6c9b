package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestSettingsRepository_GetEmpty(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewSettingsRepository(db)

	_, err := repo.Get(context.Background())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound before seeding, got %v", err)
	}
}

func TestSettingsRepository_PutUpserts(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	if err := repo.Put(ctx, models.UserSettings{
		ID: models.SettingsID, Religion: "christianity", Email: "a@example.com",
	}); err != nil {
		t.Fatalf("putting settings: %v", err)
	}
	if err := repo.Put(ctx, models.UserSettings{
		ID: models.SettingsID, Religion: "buddhism", DarkMode: true, Email: "a@example.com", LastEndOfDay: "2026-08-31",
	}); err != nil {
		t.Fatalf("replacing settings: %v", err)
	}

	settings, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("getting settings: %v", err)
	}
	if settings.Religion != "buddhism" || !settings.DarkMode || settings.LastEndOfDay != "2026-08-31" {
		t.Errorf("expected the second write to win, got %+v", settings)
	}
}

func TestTextToolRepository_GetDefaultsToEmpty(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTextToolRepository(db)
	ctx := context.Background()

	tool, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("getting text tool: %v", err)
	}
	if tool.Content != "" || !tool.UpdatedAt.IsZero() {
		t.Errorf("expected an empty default, got %+v", tool)
	}

	if err := repo.Set(ctx, "scratch notes"); err != nil {
		t.Fatalf("setting text tool: %v", err)
	}
	tool, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("getting text tool: %v", err)
	}
	if tool.Content != "scratch notes" || tool.UpdatedAt.IsZero() {
		t.Errorf("expected the stored content with a timestamp, got %+v", tool)
	}
}
