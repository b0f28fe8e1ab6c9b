package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/faithfullife/life-dashboard/internal/models"
)

type DailyGoalsRepository interface {
	Get(ctx context.Context, categoryID, date string) ([]models.DailyGoalItem, error)
	Set(ctx context.Context, categoryID, date string, goals []models.DailyGoalItem) error
}

type SQLiteDailyGoalsRepository struct {
	database *sql.DB
}

func NewDailyGoalsRepository(database *sql.DB) *SQLiteDailyGoalsRepository {
	return &SQLiteDailyGoalsRepository{database: database}
}

// Get returns the day's goal blob for a category, empty when none is stored.
func (repository *SQLiteDailyGoalsRepository) Get(ctx context.Context, categoryID, date string) ([]models.DailyGoalItem, error) {
	var goalsJSON string
	err := repository.database.QueryRowContext(ctx,
		"SELECT goals FROM daily_goals WHERE category_id = ? AND date = ?",
		categoryID, date,
	).Scan(&goalsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.DailyGoalItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting daily goals: %w", err)
	}

	var goals []models.DailyGoalItem
	if err := unmarshalJSON(goalsJSON, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []models.DailyGoalItem{}
	}
	return goals, nil
}

func (repository *SQLiteDailyGoalsRepository) Set(ctx context.Context, categoryID, date string, goals []models.DailyGoalItem) error {
	goalsJSON, err := marshalJSON(goals)
	if err != nil {
		return err
	}

	id := categoryID + "_" + date
	_, err = repository.database.ExecContext(ctx,
		`INSERT INTO daily_goals (id, category_id, date, goals)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (category_id, date) DO UPDATE SET goals = excluded.goals`,
		id, categoryID, date, goalsJSON,
	)
	if err != nil {
		return fmt.Errorf("setting daily goals: %w", err)
	}
	return nil
}
