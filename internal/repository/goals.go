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

type GoalFilter struct {
	Date       string
	CategoryID string
}

type GoalRepository interface {
	FindAll(ctx context.Context, filter GoalFilter) ([]models.Goal, error)
	FindByID(ctx context.Context, id string) (models.Goal, error)
	Create(ctx context.Context, goal models.Goal) (models.Goal, error)
	Update(ctx context.Context, goal models.Goal) error
	Delete(ctx context.Context, id string) error
}

type SQLiteGoalRepository struct {
	database *sql.DB
}

func NewGoalRepository(database *sql.DB) *SQLiteGoalRepository {
	return &SQLiteGoalRepository{database: database}
}

func (repository *SQLiteGoalRepository) FindAll(ctx context.Context, filter GoalFilter) ([]models.Goal, error) {
	query := `SELECT id, text, goal_type, category_id, date, completed, created_at
	FROM goals WHERE 1=1`

	var args []interface{}

	if filter.Date != "" {
		query += " AND date = ?"
		args = append(args, filter.Date)
	}
	if filter.CategoryID != "" {
		query += " AND category_id = ?"
		args = append(args, filter.CategoryID)
	}

	query += " ORDER BY created_at ASC"

	rows, err := repository.database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(
			&goal.ID, &goal.Text, &goal.GoalType, &goal.CategoryID,
			&goal.Date, &goal.Completed, &goal.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (repository *SQLiteGoalRepository) Create(ctx context.Context, goal models.Goal) (models.Goal, error) {
	if !goal.GoalType.Valid() {
		return models.Goal{}, fmt.Errorf("creating goal: %w: goal type %q", ErrInvalid, goal.GoalType)
	}
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if goal.Date == "" {
		goal.Date = time.Now().Format("2006-01-02")
	}
	goal.CreatedAt = time.Now()

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO goals (id, text, goal_type, category_id, date, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.Text, goal.GoalType, goal.CategoryID,
		goal.Date, goal.Completed, goal.CreatedAt,
	)
	if err != nil {
		return models.Goal{}, fmt.Errorf("creating goal: %w", err)
	}
	return goal, nil
}

func (repository *SQLiteGoalRepository) Update(ctx context.Context, goal models.Goal) error {
	if !goal.GoalType.Valid() {
		return fmt.Errorf("updating goal: %w: goal type %q", ErrInvalid, goal.GoalType)
	}

	result, err := repository.database.ExecContext(ctx,
		`UPDATE goals SET text = ?, goal_type = ?, category_id = ?, date = ?, completed = ?
		WHERE id = ?`,
		goal.Text, goal.GoalType, goal.CategoryID, goal.Date, goal.Completed, goal.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating goal: %w", ErrNotFound)
	}
	return nil
}

func (repository *SQLiteGoalRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

func (repository *SQLiteGoalRepository) FindByID(ctx context.Context, id string) (models.Goal, error) {
	var goal models.Goal
	err := repository.database.QueryRowContext(ctx,
		`SELECT id, text, goal_type, category_id, date, completed, created_at
		FROM goals WHERE id = ?`, id,
	).Scan(
		&goal.ID, &goal.Text, &goal.GoalType, &goal.CategoryID,
		&goal.Date, &goal.Completed, &goal.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Goal{}, fmt.Errorf("finding goal: %w", ErrNotFound)
	}
	if err != nil {
		return models.Goal{}, fmt.Errorf("finding goal: %w", err)
	}
	return goal, nil
}
