package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/google/uuid"
)

type HobbyLinkRepository interface {
	FindAll(ctx context.Context) ([]models.HobbyLink, error)
	FindByID(ctx context.Context, id string) (models.HobbyLink, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.HobbyLink, error)
	Create(ctx context.Context, link models.HobbyLink) (models.HobbyLink, error)
	Update(ctx context.Context, link models.HobbyLink) error
	Delete(ctx context.Context, id string) error
}

type SQLiteHobbyLinkRepository struct {
	database *sql.DB
}

func NewHobbyLinkRepository(database *sql.DB) *SQLiteHobbyLinkRepository {
	return &SQLiteHobbyLinkRepository{database: database}
}

func (repository *SQLiteHobbyLinkRepository) FindAll(ctx context.Context) ([]models.HobbyLink, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT id, label, url, category_id, sort_order FROM hobby_links ORDER BY sort_order ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("finding hobby links: %w", err)
	}
	defer rows.Close()

	return scanHobbyLinks(rows)
}

func (repository *SQLiteHobbyLinkRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.HobbyLink, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT id, label, url, category_id, sort_order FROM hobby_links WHERE category_id = ? ORDER BY sort_order ASC",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding hobby links by category: %w", err)
	}
	defer rows.Close()

	return scanHobbyLinks(rows)
}

func (repository *SQLiteHobbyLinkRepository) FindByID(ctx context.Context, id string) (models.HobbyLink, error) {
	var link models.HobbyLink
	err := repository.database.QueryRowContext(ctx,
		"SELECT id, label, url, category_id, sort_order FROM hobby_links WHERE id = ?", id,
	).Scan(&link.ID, &link.Label, &link.URL, &link.CategoryID, &link.Order)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HobbyLink{}, fmt.Errorf("finding hobby link: %w", ErrNotFound)
	}
	if err != nil {
		return models.HobbyLink{}, fmt.Errorf("finding hobby link: %w", err)
	}
	return link, nil
}

func (repository *SQLiteHobbyLinkRepository) Create(ctx context.Context, link models.HobbyLink) (models.HobbyLink, error) {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}

	_, err := repository.database.ExecContext(ctx,
		"INSERT INTO hobby_links (id, label, url, category_id, sort_order) VALUES (?, ?, ?, ?, ?)",
		link.ID, link.Label, link.URL, link.CategoryID, link.Order,
	)
	if err != nil {
		return models.HobbyLink{}, fmt.Errorf("creating hobby link: %w", err)
	}
	return link, nil
}

func (repository *SQLiteHobbyLinkRepository) Update(ctx context.Context, link models.HobbyLink) error {
	result, err := repository.database.ExecContext(ctx,
		"UPDATE hobby_links SET label = ?, url = ?, category_id = ?, sort_order = ? WHERE id = ?",
		link.Label, link.URL, link.CategoryID, link.Order, link.ID,
	)
	if err != nil {
		return fmt.Errorf("updating hobby link: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating hobby link: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating hobby link: %w", ErrNotFound)
	}
	return nil
}

func (repository *SQLiteHobbyLinkRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM hobby_links WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting hobby link: %w", err)
	}
	return nil
}

func scanHobbyLinks(rows *sql.Rows) ([]models.HobbyLink, error) {
	var links []models.HobbyLink
	for rows.Next() {
		var link models.HobbyLink
		if err := rows.Scan(&link.ID, &link.Label, &link.URL, &link.CategoryID, &link.Order); err != nil {
			return nil, fmt.Errorf("scanning hobby link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}
