package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faithfullife/life-dashboard/internal/models"
)

type TextToolRepository interface {
	Get(ctx context.Context) (models.TextTool, error)
	Set(ctx context.Context, content string) error
}

type SQLiteTextToolRepository struct {
	database *sql.DB
}

func NewTextToolRepository(database *sql.DB) *SQLiteTextToolRepository {
	return &SQLiteTextToolRepository{database: database}
}

func (repository *SQLiteTextToolRepository) Get(ctx context.Context) (models.TextTool, error) {
	var tool models.TextTool
	err := repository.database.QueryRowContext(ctx,
		"SELECT id, content, updated_at FROM text_tool WHERE id = ?", models.TextToolID,
	).Scan(&tool.ID, &tool.Content, &tool.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TextTool{ID: models.TextToolID}, nil
	}
	if err != nil {
		return models.TextTool{}, fmt.Errorf("getting text tool: %w", err)
	}
	return tool, nil
}

func (repository *SQLiteTextToolRepository) Set(ctx context.Context, content string) error {
	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO text_tool (id, content, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		models.TextToolID, content, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("setting text tool: %w", err)
	}
	return nil
}
