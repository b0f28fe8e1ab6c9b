package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/faithfullife/life-dashboard/internal/models"
)

type TrackerLogRepository interface {
	FindByDate(ctx context.Context, date string) ([]models.DailyTrackerLog, error)
	Set(ctx context.Context, date, templateID string, completed bool, value string) error
}

type SQLiteTrackerLogRepository struct {
	database *sql.DB
}

func NewTrackerLogRepository(database *sql.DB) *SQLiteTrackerLogRepository {
	return &SQLiteTrackerLogRepository{database: database}
}

func (repository *SQLiteTrackerLogRepository) FindByDate(ctx context.Context, date string) ([]models.DailyTrackerLog, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT id, date, template_id, completed, value FROM daily_tracker_logs WHERE date = ?", date,
	)
	if err != nil {
		return nil, fmt.Errorf("finding tracker logs by date: %w", err)
	}
	defer rows.Close()

	var logs []models.DailyTrackerLog
	for rows.Next() {
		var log models.DailyTrackerLog
		if err := rows.Scan(&log.ID, &log.Date, &log.TemplateID, &log.Completed, &log.Value); err != nil {
			return nil, fmt.Errorf("scanning tracker log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// Set upserts the (date, template) row; calling twice keeps a single row
// with the latest value.
func (repository *SQLiteTrackerLogRepository) Set(ctx context.Context, date, templateID string, completed bool, value string) error {
	id := date + "_" + templateID
	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO daily_tracker_logs (id, date, template_id, completed, value)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (date, template_id) DO UPDATE SET
			completed = excluded.completed,
			value = excluded.value`,
		id, date, templateID, completed, value,
	)
	if err != nil {
		return fmt.Errorf("setting tracker log: %w", err)
	}
	return nil
}
