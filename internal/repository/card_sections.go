package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/google/uuid"
)

type CardSectionRepository interface {
	FindByCategory(ctx context.Context, categoryID string) ([]models.CardSection, error)
	FindByID(ctx context.Context, id string) (models.CardSection, error)
	Create(ctx context.Context, section models.CardSection) (models.CardSection, error)
	CreateAt(ctx context.Context, section models.CardSection) (models.CardSection, error)
	Update(ctx context.Context, section models.CardSection) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}

type SQLiteCardSectionRepository struct {
	database *sql.DB
}

func NewCardSectionRepository(database *sql.DB) *SQLiteCardSectionRepository {
	return &SQLiteCardSectionRepository{database: database}
}

func (repository *SQLiteCardSectionRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.CardSection, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, category_id, name, sort_order, removable, kind, section_group
		FROM card_sections WHERE category_id = ? ORDER BY sort_order ASC`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding card sections: %w", err)
	}
	defer rows.Close()

	var sections []models.CardSection
	for rows.Next() {
		var section models.CardSection
		if err := rows.Scan(
			&section.ID, &section.CategoryID, &section.Name, &section.Order,
			&section.Removable, &section.Kind, &section.Group,
		); err != nil {
			return nil, fmt.Errorf("scanning card section: %w", err)
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

func (repository *SQLiteCardSectionRepository) FindByID(ctx context.Context, id string) (models.CardSection, error) {
	var section models.CardSection
	err := repository.database.QueryRowContext(ctx,
		`SELECT id, category_id, name, sort_order, removable, kind, section_group
		FROM card_sections WHERE id = ?`, id,
	).Scan(
		&section.ID, &section.CategoryID, &section.Name, &section.Order,
		&section.Removable, &section.Kind, &section.Group,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CardSection{}, fmt.Errorf("finding card section: %w", ErrNotFound)
	}
	if err != nil {
		return models.CardSection{}, fmt.Errorf("finding card section: %w", err)
	}
	return section, nil
}

// Create appends the section after its category's existing ones. Grouped
// physical sections (diet, exercise) are instead inserted after the last
// section of their group, shifting later sections down by one.
func (repository *SQLiteCardSectionRepository) Create(ctx context.Context, section models.CardSection) (models.CardSection, error) {
	if !section.Kind.Valid() {
		return models.CardSection{}, fmt.Errorf("creating card section: %w: kind %q", ErrInvalid, section.Kind)
	}
	if !section.Group.Valid() {
		return models.CardSection{}, fmt.Errorf("creating card section: %w: group %q", ErrInvalid, section.Group)
	}
	if section.ID == "" {
		section.ID = uuid.New().String()
	}

	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return models.CardSection{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer transaction.Rollback()

	if section.CategoryID == "physical" && section.Group != models.SectionGroupNone {
		var maxGroupOrder sql.NullInt64
		err = transaction.QueryRowContext(ctx,
			"SELECT MAX(sort_order) FROM card_sections WHERE category_id = ? AND section_group = ?",
			section.CategoryID, section.Group,
		).Scan(&maxGroupOrder)
		if err != nil {
			return models.CardSection{}, fmt.Errorf("finding group order: %w", err)
		}

		if maxGroupOrder.Valid {
			section.Order = int(maxGroupOrder.Int64) + 1
		} else {
			section.Order = 2
		}

		if _, err := transaction.ExecContext(ctx,
			"UPDATE card_sections SET sort_order = sort_order + 1 WHERE category_id = ? AND sort_order >= ?",
			section.CategoryID, section.Order,
		); err != nil {
			return models.CardSection{}, fmt.Errorf("shifting section order: %w", err)
		}
	} else {
		var count int
		err = transaction.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM card_sections WHERE category_id = ?", section.CategoryID,
		).Scan(&count)
		if err != nil {
			return models.CardSection{}, fmt.Errorf("counting card sections: %w", err)
		}
		section.Order = count
	}

	if _, err := transaction.ExecContext(ctx,
		`INSERT INTO card_sections (id, category_id, name, sort_order, removable, kind, section_group)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		section.ID, section.CategoryID, section.Name, section.Order,
		section.Removable, section.Kind, section.Group,
	); err != nil {
		return models.CardSection{}, fmt.Errorf("creating card section: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return models.CardSection{}, fmt.Errorf("committing card section: %w", err)
	}
	return section, nil
}

// CreateAt inserts a section at the exact order it carries, without the
// placement logic of Create. Used by seeding, where orders are fixed.
func (repository *SQLiteCardSectionRepository) CreateAt(ctx context.Context, section models.CardSection) (models.CardSection, error) {
	if !section.Kind.Valid() {
		return models.CardSection{}, fmt.Errorf("creating card section: %w: kind %q", ErrInvalid, section.Kind)
	}
	if !section.Group.Valid() {
		return models.CardSection{}, fmt.Errorf("creating card section: %w: group %q", ErrInvalid, section.Group)
	}
	if section.ID == "" {
		section.ID = uuid.New().String()
	}

	if _, err := repository.database.ExecContext(ctx,
		`INSERT INTO card_sections (id, category_id, name, sort_order, removable, kind, section_group)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		section.ID, section.CategoryID, section.Name, section.Order,
		section.Removable, section.Kind, section.Group,
	); err != nil {
		return models.CardSection{}, fmt.Errorf("creating card section: %w", err)
	}
	return section, nil
}

func (repository *SQLiteCardSectionRepository) Update(ctx context.Context, section models.CardSection) error {
	if !section.Kind.Valid() {
		return fmt.Errorf("updating card section: %w: kind %q", ErrInvalid, section.Kind)
	}
	if !section.Group.Valid() {
		return fmt.Errorf("updating card section: %w: group %q", ErrInvalid, section.Group)
	}

	result, err := repository.database.ExecContext(ctx,
		`UPDATE card_sections SET name = ?, sort_order = ?, removable = ?, kind = ?, section_group = ?
		WHERE id = ?`,
		section.Name, section.Order, section.Removable, section.Kind, section.Group, section.ID,
	)
	if err != nil {
		return fmt.Errorf("updating card section: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating card section: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating card section: %w", ErrNotFound)
	}
	return nil
}

// Delete removes a section and every entry under it in one transaction, so
// orphaned section entries can never be observed.
func (repository *SQLiteCardSectionRepository) Delete(ctx context.Context, id string) error {
	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer transaction.Rollback()

	if _, err := transaction.ExecContext(ctx, "DELETE FROM section_entries WHERE section_id = ?", id); err != nil {
		return fmt.Errorf("deleting section entries: %w", err)
	}
	if _, err := transaction.ExecContext(ctx, "DELETE FROM card_sections WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting card section: %w", err)
	}

	return transaction.Commit()
}

func (repository *SQLiteCardSectionRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := repository.database.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM card_sections WHERE category_id = ?", categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting card sections: %w", err)
	}
	return count, nil
}
