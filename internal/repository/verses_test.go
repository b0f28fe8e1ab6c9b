package repository_test

import (
	"context"
	"testing"

	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestVerseRepository_LastUpdated(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewVerseRepository(db)
	ctx := context.Background()

	updatedAt, err := repo.LastUpdated(ctx, "christianity")
	if err != nil {
		t.Fatalf("reading freshness of an empty cache: %v", err)
	}
	if !updatedAt.IsZero() {
		t.Errorf("expected the zero time for an empty cache, got %v", updatedAt)
	}

	if err := repo.PutForReligion(ctx, "christianity", map[string][]string{
		"spiritual": {"Be still\n— Psalm 46:10"},
		"physical":  {"Run with endurance\n— Hebrews 12:1"},
	}); err != nil {
		t.Fatalf("putting verses: %v", err)
	}

	updatedAt, err = repo.LastUpdated(ctx, "christianity")
	if err != nil {
		t.Fatalf("reading freshness: %v", err)
	}
	if updatedAt.IsZero() {
		t.Error("expected a timestamp after writing verses")
	}

	other, err := repo.LastUpdated(ctx, "buddhism")
	if err != nil {
		t.Fatalf("reading freshness of another religion: %v", err)
	}
	if !other.IsZero() {
		t.Errorf("expected freshness scoped per religion, got %v", other)
	}
}

func TestVerseRepository_PutForReligionUpserts(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewVerseRepository(db)
	ctx := context.Background()

	if err := repo.PutForReligion(ctx, "christianity", map[string][]string{
		"spiritual": {"Old verse\n— Old 1:1"},
	}); err != nil {
		t.Fatalf("putting verses: %v", err)
	}
	if err := repo.PutForReligion(ctx, "christianity", map[string][]string{
		"spiritual": {"New verse\n— New 2:2"},
	}); err != nil {
		t.Fatalf("replacing verses: %v", err)
	}

	rows, err := repo.FindByReligion(ctx, "christianity")
	if err != nil {
		t.Fatalf("finding verses: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single row per religion and category, got %d", len(rows))
	}
	if rows[0].Verses[0] != "New verse\n— New 2:2" {
		t.Errorf("expected the second write to win, got %q", rows[0].Verses[0])
	}
}
