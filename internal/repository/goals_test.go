package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestGoalRepository_FindAllFilters(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewGoalRepository(db)
	ctx := context.Background()

	seed := []models.Goal{
		{Text: "run", GoalType: models.GoalShort, CategoryID: "physical", Date: "2026-09-01"},
		{Text: "read", GoalType: models.GoalShort, CategoryID: "hobby", Date: "2026-09-01"},
		{Text: "save", GoalType: models.GoalMedium, CategoryID: "income", Date: "2026-09-02"},
	}
	for _, goal := range seed {
		if _, err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("creating goal: %v", err)
		}
	}

	byDate, err := repo.FindAll(ctx, repository.GoalFilter{Date: "2026-09-01"})
	if err != nil {
		t.Fatalf("finding goals by date: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("expected 2 goals for date, got %d", len(byDate))
	}

	byCategory, err := repo.FindAll(ctx, repository.GoalFilter{CategoryID: "hobby"})
	if err != nil {
		t.Fatalf("finding goals by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Text != "read" {
		t.Errorf("expected the hobby goal, got %+v", byCategory)
	}

	both, err := repo.FindAll(ctx, repository.GoalFilter{Date: "2026-09-02", CategoryID: "income"})
	if err != nil {
		t.Fatalf("finding goals by date and category: %v", err)
	}
	if len(both) != 1 || both[0].Text != "save" {
		t.Errorf("expected the income goal, got %+v", both)
	}
}

func TestGoalRepository_CreateRejectsUnknownGoalType(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewGoalRepository(db)

	_, err := repo.Create(context.Background(), models.Goal{
		Text: "bad", GoalType: "hourly", CategoryID: "physical",
	})
	if !errors.Is(err, repository.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestGoalRepository_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewGoalRepository(db)

	err := repo.Update(context.Background(), models.Goal{
		ID: "missing", Text: "x", GoalType: models.GoalShort, CategoryID: "physical", Date: "2026-09-01",
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGoalRepository_UpdateTogglesCompleted(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewGoalRepository(db)
	ctx := context.Background()

	goal, err := repo.Create(ctx, models.Goal{
		Text: "meditate", GoalType: models.GoalShort, CategoryID: "spiritual", Date: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("creating goal: %v", err)
	}

	goal.Completed = true
	if err := repo.Update(ctx, goal); err != nil {
		t.Fatalf("updating goal: %v", err)
	}

	found, err := repo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("finding goal: %v", err)
	}
	if !found.Completed {
		t.Error("expected goal marked completed")
	}
}

func TestDailyGoalsRepository_GetDefaultsToEmpty(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewDailyGoalsRepository(db)

	goals, err := repo.Get(context.Background(), "physical", "2026-09-01")
	if err != nil {
		t.Fatalf("getting daily goals: %v", err)
	}
	if goals == nil || len(goals) != 0 {
		t.Errorf("expected empty slice, got %v", goals)
	}
}

func TestDailyGoalsRepository_SetUpserts(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewDailyGoalsRepository(db)
	ctx := context.Background()

	first := []models.DailyGoalItem{{Text: "stretch", Type: "short"}}
	if err := repo.Set(ctx, "physical", "2026-09-01", first); err != nil {
		t.Fatalf("setting daily goals: %v", err)
	}

	second := []models.DailyGoalItem{
		{Text: "stretch", Type: "short"},
		{Text: "hydrate", Type: "short"},
	}
	if err := repo.Set(ctx, "physical", "2026-09-01", second); err != nil {
		t.Fatalf("replacing daily goals: %v", err)
	}

	goals, err := repo.Get(ctx, "physical", "2026-09-01")
	if err != nil {
		t.Fatalf("getting daily goals: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals after replace, got %d", len(goals))
	}
	if goals[1].Text != "hydrate" {
		t.Errorf("expected replaced blob, got %+v", goals)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM daily_goals").Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single row after two sets, got %d", count)
	}
}
