package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/google/uuid"
)

type TodoRepository interface {
	FindByID(ctx context.Context, id string) (models.Todo, error)
	FindByDate(ctx context.Context, date string) ([]models.Todo, error)
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteCompletedForDate(ctx context.Context, date string) error
}

type SQLiteTodoRepository struct {
	database *sql.DB
}

func NewTodoRepository(database *sql.DB) *SQLiteTodoRepository {
	return &SQLiteTodoRepository{database: database}
}

func (repository *SQLiteTodoRepository) FindByID(ctx context.Context, id string) (models.Todo, error) {
	var todo models.Todo
	err := repository.database.QueryRowContext(ctx,
		"SELECT id, text, completed, date, created_at FROM todos WHERE id = ?", id,
	).Scan(&todo.ID, &todo.Text, &todo.Completed, &todo.Date, &todo.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, fmt.Errorf("finding todo by id: %w", ErrNotFound)
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("finding todo by id: %w", err)
	}
	return todo, nil
}

func (repository *SQLiteTodoRepository) FindByDate(ctx context.Context, date string) ([]models.Todo, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT id, text, completed, date, created_at FROM todos WHERE date = ? ORDER BY created_at ASC", date,
	)
	if err != nil {
		return nil, fmt.Errorf("finding todos by date: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Text, &todo.Completed, &todo.Date, &todo.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

func (repository *SQLiteTodoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	if todo.Date == "" {
		todo.Date = time.Now().Format("2006-01-02")
	}
	todo.CreatedAt = time.Now()

	_, err := repository.database.ExecContext(ctx,
		"INSERT INTO todos (id, text, completed, date, created_at) VALUES (?, ?, ?, ?, ?)",
		todo.ID, todo.Text, todo.Completed, todo.Date, todo.CreatedAt,
	)
	if err != nil {
		return models.Todo{}, fmt.Errorf("creating todo: %w", err)
	}
	return todo, nil
}

func (repository *SQLiteTodoRepository) Toggle(ctx context.Context, id string) error {
	result, err := repository.database.ExecContext(ctx,
		"UPDATE todos SET completed = NOT completed WHERE id = ?", id,
	)
	if err != nil {
		return fmt.Errorf("toggling todo: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("toggling todo: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("toggling todo: %w", ErrNotFound)
	}
	return nil
}

func (repository *SQLiteTodoRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	return nil
}

func (repository *SQLiteTodoRepository) DeleteCompletedForDate(ctx context.Context, date string) error {
	_, err := repository.database.ExecContext(ctx,
		"DELETE FROM todos WHERE date = ? AND completed = 1", date,
	)
	if err != nil {
		return fmt.Errorf("deleting completed todos: %w", err)
	}
	return nil
}
