package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faithfullife/life-dashboard/internal/models"
)

type SettingsRepository interface {
	Get(ctx context.Context) (models.UserSettings, error)
	Put(ctx context.Context, settings models.UserSettings) error
}

type SQLiteSettingsRepository struct {
	database *sql.DB
}

func NewSettingsRepository(database *sql.DB) *SQLiteSettingsRepository {
	return &SQLiteSettingsRepository{database: database}
}

func (repository *SQLiteSettingsRepository) Get(ctx context.Context) (models.UserSettings, error) {
	var settings models.UserSettings
	err := repository.database.QueryRowContext(ctx,
		`SELECT id, religion, dark_mode, email, last_end_of_day, updated_at
		FROM user_settings WHERE id = ?`, models.SettingsID,
	).Scan(
		&settings.ID, &settings.Religion, &settings.DarkMode,
		&settings.Email, &settings.LastEndOfDay, &settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserSettings{}, fmt.Errorf("getting settings: %w", ErrNotFound)
	}
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("getting settings: %w", err)
	}
	return settings, nil
}

func (repository *SQLiteSettingsRepository) Put(ctx context.Context, settings models.UserSettings) error {
	settings.ID = models.SettingsID
	if settings.Religion == "" {
		settings.Religion = "christianity"
	}
	settings.UpdatedAt = time.Now()

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO user_settings (id, religion, dark_mode, email, last_end_of_day, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			religion = excluded.religion,
			dark_mode = excluded.dark_mode,
			email = excluded.email,
			last_end_of_day = excluded.last_end_of_day,
			updated_at = excluded.updated_at`,
		settings.ID, settings.Religion, settings.DarkMode,
		settings.Email, settings.LastEndOfDay, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("putting settings: %w", err)
	}
	return nil
}
