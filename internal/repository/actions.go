package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/google/uuid"
)

// Actions share the todo shape but live in their own bucket and are never
// pruned by the end-of-day rollover.
type ActionRepository interface {
	FindByDate(ctx context.Context, date string) ([]models.Action, error)
	Create(ctx context.Context, action models.Action) (models.Action, error)
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SQLiteActionRepository struct {
	database *sql.DB
}

func NewActionRepository(database *sql.DB) *SQLiteActionRepository {
	return &SQLiteActionRepository{database: database}
}

func (repository *SQLiteActionRepository) FindByDate(ctx context.Context, date string) ([]models.Action, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT id, text, completed, date, created_at FROM actions WHERE date = ? ORDER BY created_at ASC", date,
	)
	if err != nil {
		return nil, fmt.Errorf("finding actions by date: %w", err)
	}
	defer rows.Close()

	var actions []models.Action
	for rows.Next() {
		var action models.Action
		if err := rows.Scan(&action.ID, &action.Text, &action.Completed, &action.Date, &action.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		actions = append(actions, action)
	}
	return actions, rows.Err()
}

func (repository *SQLiteActionRepository) Create(ctx context.Context, action models.Action) (models.Action, error) {
	if action.ID == "" {
		action.ID = uuid.New().String()
	}
	if action.Date == "" {
		action.Date = time.Now().Format("2006-01-02")
	}
	action.CreatedAt = time.Now()

	_, err := repository.database.ExecContext(ctx,
		"INSERT INTO actions (id, text, completed, date, created_at) VALUES (?, ?, ?, ?, ?)",
		action.ID, action.Text, action.Completed, action.Date, action.CreatedAt,
	)
	if err != nil {
		return models.Action{}, fmt.Errorf("creating action: %w", err)
	}
	return action, nil
}

func (repository *SQLiteActionRepository) Toggle(ctx context.Context, id string) error {
	result, err := repository.database.ExecContext(ctx,
		"UPDATE actions SET completed = NOT completed WHERE id = ?", id,
	)
	if err != nil {
		return fmt.Errorf("toggling action: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("toggling action: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("toggling action: %w", ErrNotFound)
	}
	return nil
}

func (repository *SQLiteActionRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM actions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting action: %w", err)
	}
	return nil
}
