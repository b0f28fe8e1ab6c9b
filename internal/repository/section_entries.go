package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/google/uuid"
)

type SectionEntryRepository interface {
	FindBySection(ctx context.Context, sectionID string) ([]models.SectionEntry, error)
	FindByID(ctx context.Context, id string) (models.SectionEntry, error)
	FindAll(ctx context.Context) ([]models.SectionEntry, error)
	Create(ctx context.Context, entry models.SectionEntry) (models.SectionEntry, error)
	Update(ctx context.Context, entry models.SectionEntry) error
	Delete(ctx context.Context, id string) error
}

type SQLiteSectionEntryRepository struct {
	database *sql.DB
}

func NewSectionEntryRepository(database *sql.DB) *SQLiteSectionEntryRepository {
	return &SQLiteSectionEntryRepository{database: database}
}

func (repository *SQLiteSectionEntryRepository) FindBySection(ctx context.Context, sectionID string) ([]models.SectionEntry, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, section_id, name, field_type, options, sort_order
		FROM section_entries WHERE section_id = ? ORDER BY sort_order ASC`,
		sectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding section entries: %w", err)
	}
	defer rows.Close()

	return scanSectionEntries(rows)
}

func (repository *SQLiteSectionEntryRepository) FindAll(ctx context.Context) ([]models.SectionEntry, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT id, section_id, name, field_type, options, sort_order FROM section_entries",
	)
	if err != nil {
		return nil, fmt.Errorf("finding section entries: %w", err)
	}
	defer rows.Close()

	return scanSectionEntries(rows)
}

func (repository *SQLiteSectionEntryRepository) FindByID(ctx context.Context, id string) (models.SectionEntry, error) {
	row := repository.database.QueryRowContext(ctx,
		"SELECT id, section_id, name, field_type, options, sort_order FROM section_entries WHERE id = ?", id,
	)
	entry, err := scanSectionEntryRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SectionEntry{}, fmt.Errorf("finding section entry: %w", ErrNotFound)
	}
	if err != nil {
		return models.SectionEntry{}, fmt.Errorf("finding section entry: %w", err)
	}
	return entry, nil
}

func (repository *SQLiteSectionEntryRepository) Create(ctx context.Context, entry models.SectionEntry) (models.SectionEntry, error) {
	if !entry.FieldType.Valid() {
		return models.SectionEntry{}, fmt.Errorf("creating section entry: %w: field type %q", ErrInvalid, entry.FieldType)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	var count int
	if err := repository.database.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM section_entries WHERE section_id = ?", entry.SectionID,
	).Scan(&count); err != nil {
		return models.SectionEntry{}, fmt.Errorf("counting section entries: %w", err)
	}
	entry.Order = count

	optionsJSON, err := marshalJSON(entry.Options)
	if err != nil {
		return models.SectionEntry{}, err
	}

	_, err = repository.database.ExecContext(ctx,
		`INSERT INTO section_entries (id, section_id, name, field_type, options, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.SectionID, entry.Name, entry.FieldType, optionsJSON, entry.Order,
	)
	if err != nil {
		return models.SectionEntry{}, fmt.Errorf("creating section entry: %w", err)
	}
	return entry, nil
}

func (repository *SQLiteSectionEntryRepository) Update(ctx context.Context, entry models.SectionEntry) error {
	if !entry.FieldType.Valid() {
		return fmt.Errorf("updating section entry: %w: field type %q", ErrInvalid, entry.FieldType)
	}

	optionsJSON, err := marshalJSON(entry.Options)
	if err != nil {
		return err
	}

	result, err := repository.database.ExecContext(ctx,
		`UPDATE section_entries SET name = ?, field_type = ?, options = ?, sort_order = ?
		WHERE id = ?`,
		entry.Name, entry.FieldType, optionsJSON, entry.Order, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("updating section entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating section entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating section entry: %w", ErrNotFound)
	}
	return nil
}

func (repository *SQLiteSectionEntryRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM section_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting section entry: %w", err)
	}
	return nil
}

func scanSectionEntryRow(scan func(dest ...any) error) (models.SectionEntry, error) {
	var entry models.SectionEntry
	var optionsJSON string
	if err := scan(&entry.ID, &entry.SectionID, &entry.Name, &entry.FieldType, &optionsJSON, &entry.Order); err != nil {
		return models.SectionEntry{}, err
	}
	if err := unmarshalJSON(optionsJSON, &entry.Options); err != nil {
		return models.SectionEntry{}, err
	}
	return entry, nil
}

func scanSectionEntries(rows *sql.Rows) ([]models.SectionEntry, error) {
	var entries []models.SectionEntry
	for rows.Next() {
		entry, err := scanSectionEntryRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning section entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
