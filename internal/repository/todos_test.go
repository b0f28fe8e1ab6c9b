package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestTodoRepository_CreateAndFindByDate(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTodoRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Todo{Text: "buy milk", Date: "2026-09-01"})
	if err != nil {
		t.Fatalf("creating todo: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.Completed {
		t.Error("new todo should not be completed")
	}

	todos, err := repo.FindByDate(ctx, "2026-09-01")
	if err != nil {
		t.Fatalf("finding todos: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	if todos[0].Text != "buy milk" {
		t.Errorf("expected 'buy milk', got '%s'", todos[0].Text)
	}
}

func TestTodoRepository_CreateDefaultsDateToToday(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTodoRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Todo{Text: "no date"})
	if err != nil {
		t.Fatalf("creating todo: %v", err)
	}
	if created.Date == "" {
		t.Error("expected date to default")
	}
}

func TestTodoRepository_Toggle(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTodoRepository(db)
	ctx := context.Background()

	created, _ := repo.Create(ctx, models.Todo{Text: "toggle me", Date: "2026-09-01"})

	if err := repo.Toggle(ctx, created.ID); err != nil {
		t.Fatalf("toggling todo: %v", err)
	}
	todo, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("finding todo: %v", err)
	}
	if !todo.Completed {
		t.Error("expected completed after toggle")
	}

	if err := repo.Toggle(ctx, created.ID); err != nil {
		t.Fatalf("toggling todo back: %v", err)
	}
	todo, _ = repo.FindByID(ctx, created.ID)
	if todo.Completed {
		t.Error("expected not completed after second toggle")
	}
}

func TestTodoRepository_ToggleMissing(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTodoRepository(db)

	err := repo.Toggle(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTodoRepository_DeleteMissingIsNoOp(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTodoRepository(db)

	if err := repo.Delete(context.Background(), "missing"); err != nil {
		t.Errorf("deleting missing todo should be a no-op, got %v", err)
	}
}

func TestTodoRepository_DeleteCompletedForDate(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewTodoRepository(db)
	ctx := context.Background()

	done, _ := repo.Create(ctx, models.Todo{Text: "done", Date: "2026-09-01"})
	repo.Toggle(ctx, done.ID)
	repo.Create(ctx, models.Todo{Text: "open", Date: "2026-09-01"})
	otherDay, _ := repo.Create(ctx, models.Todo{Text: "other day", Date: "2026-09-02"})
	repo.Toggle(ctx, otherDay.ID)

	if err := repo.DeleteCompletedForDate(ctx, "2026-09-01"); err != nil {
		t.Fatalf("clearing completed: %v", err)
	}

	todos, _ := repo.FindByDate(ctx, "2026-09-01")
	if len(todos) != 1 || todos[0].Text != "open" {
		t.Errorf("expected only the open todo to remain, got %v", todos)
	}
	others, _ := repo.FindByDate(ctx, "2026-09-02")
	if len(others) != 1 {
		t.Errorf("other dates should be untouched, got %v", others)
	}
}
