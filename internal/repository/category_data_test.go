package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestCategoryDataRepository_GetDefaultsToEmpty(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewCategoryDataRepository(db)

	data, err := repo.Get(context.Background(), "family")
	if err != nil {
		t.Fatalf("getting category data: %v", err)
	}
	if data == nil || len(data) != 0 {
		t.Errorf("expected empty map, got %v", data)
	}
}

func TestCategoryDataRepository_SetRoundTrip(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewCategoryDataRepository(db)
	ctx := context.Background()

	if err := repo.Set(ctx, "assets", map[string]any{"notes": "first"}); err != nil {
		t.Fatalf("setting category data: %v", err)
	}
	if err := repo.Set(ctx, "assets", map[string]any{"notes": "second"}); err != nil {
		t.Fatalf("replacing category data: %v", err)
	}

	data, err := repo.Get(ctx, "assets")
	if err != nil {
		t.Fatalf("getting category data: %v", err)
	}
	if data["notes"] != "second" {
		t.Errorf("expected the second write to win, got %v", data["notes"])
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM category_data").Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single row after two sets, got %d", count)
	}

	var updatedAt time.Time
	if err := db.QueryRow(
		"SELECT updated_at FROM category_data WHERE category_id = ?", "assets",
	).Scan(&updatedAt); err != nil {
		t.Fatalf("reading updated_at: %v", err)
	}
	if updatedAt.IsZero() {
		t.Error("expected updated_at recorded on write")
	}
}

func TestCategoryDataRepository_MutateSerializesWrites(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewCategoryDataRepository(db)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Mutate(ctx, "income", func(data map[string]any) error {
				n, _ := data["n"].(float64)
				data["n"] = n + 1
				return nil
			})
			if err != nil {
				t.Errorf("mutating category data: %v", err)
			}
		}()
	}
	wg.Wait()

	data, err := repo.Get(ctx, "income")
	if err != nil {
		t.Fatalf("getting category data: %v", err)
	}
	if n, _ := data["n"].(float64); n != 10 {
		t.Errorf("expected 10 increments, got %v", data["n"])
	}
}
