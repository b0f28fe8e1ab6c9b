package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/faithfullife/life-dashboard/internal/models"
)

type ContactWebsiteRepository interface {
	FindByCategory(ctx context.Context, categoryID string) ([]models.ContactWebsite, error)
	FindByID(ctx context.Context, id string) (models.ContactWebsite, error)
	Create(ctx context.Context, item models.ContactWebsite) (models.ContactWebsite, error)
	Update(ctx context.Context, item models.ContactWebsite) error
	Delete(ctx context.Context, id string) error
}

type SQLiteContactWebsiteRepository struct {
	database *sql.DB
}

func NewContactWebsiteRepository(database *sql.DB) *SQLiteContactWebsiteRepository {
	return &SQLiteContactWebsiteRepository{database: database}
}

const contactWebsiteColumns = "id, category_id, type, link_or_phone, sort_order"

func (repository *SQLiteContactWebsiteRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.ContactWebsite, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT "+contactWebsiteColumns+" FROM contacts_websites WHERE category_id = ? ORDER BY sort_order ASC",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding contacts and websites: %w", err)
	}
	defer rows.Close()

	items := []models.ContactWebsite{}
	for rows.Next() {
		item, err := scanContactWebsite(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (repository *SQLiteContactWebsiteRepository) FindByID(ctx context.Context, id string) (models.ContactWebsite, error) {
	row := repository.database.QueryRowContext(ctx,
		"SELECT "+contactWebsiteColumns+" FROM contacts_websites WHERE id = ?", id)
	item, err := scanContactWebsite(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContactWebsite{}, fmt.Errorf("finding contact or website %s: %w", id, ErrNotFound)
	}
	return item, err
}

func (repository *SQLiteContactWebsiteRepository) Create(ctx context.Context, item models.ContactWebsite) (models.ContactWebsite, error) {
	if !item.Type.Valid() {
		return models.ContactWebsite{}, fmt.Errorf("contact type %q: %w", item.Type, ErrInvalid)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	var count int
	err := repository.database.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contacts_websites WHERE category_id = ?", item.CategoryID,
	).Scan(&count)
	if err != nil {
		return models.ContactWebsite{}, fmt.Errorf("counting contacts and websites: %w", err)
	}
	item.Order = count

	_, err = repository.database.ExecContext(ctx,
		`INSERT INTO contacts_websites (id, category_id, type, link_or_phone, sort_order)
		VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.CategoryID, item.Type, item.LinkOrPhone, item.Order,
	)
	if err != nil {
		return models.ContactWebsite{}, fmt.Errorf("creating contact or website: %w", err)
	}
	return item, nil
}

func (repository *SQLiteContactWebsiteRepository) Update(ctx context.Context, item models.ContactWebsite) error {
	if !item.Type.Valid() {
		return fmt.Errorf("contact type %q: %w", item.Type, ErrInvalid)
	}
	result, err := repository.database.ExecContext(ctx,
		"UPDATE contacts_websites SET type = ?, link_or_phone = ?, sort_order = ? WHERE id = ?",
		item.Type, item.LinkOrPhone, item.Order, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating contact or website: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating contact or website: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating contact or website %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

func (repository *SQLiteContactWebsiteRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM contacts_websites WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting contact or website: %w", err)
	}
	return nil
}

func scanContactWebsite(scan func(dest ...any) error) (models.ContactWebsite, error) {
	var item models.ContactWebsite
	err := scan(&item.ID, &item.CategoryID, &item.Type, &item.LinkOrPhone, &item.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ContactWebsite{}, err
		}
		return models.ContactWebsite{}, fmt.Errorf("scanning contact or website: %w", err)
	}
	return item, nil
}
