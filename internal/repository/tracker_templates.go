package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/google/uuid"
)

type TrackerTemplateRepository interface {
	FindAll(ctx context.Context) ([]models.TrackerTemplate, error)
	FindByID(ctx context.Context, id string) (models.TrackerTemplate, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.TrackerTemplate, error)
	Create(ctx context.Context, template models.TrackerTemplate) (models.TrackerTemplate, error)
	Update(ctx context.Context, template models.TrackerTemplate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type SQLiteTrackerTemplateRepository struct {
	database *sql.DB
}

func NewTrackerTemplateRepository(database *sql.DB) *SQLiteTrackerTemplateRepository {
	return &SQLiteTrackerTemplateRepository{database: database}
}

func (repository *SQLiteTrackerTemplateRepository) FindAll(ctx context.Context) ([]models.TrackerTemplate, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, category_id, type, label, field_type, options, sort_order
		FROM tracker_templates ORDER BY sort_order ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("finding tracker templates: %w", err)
	}
	defer rows.Close()

	return scanTrackerTemplates(rows)
}

func (repository *SQLiteTrackerTemplateRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.TrackerTemplate, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, category_id, type, label, field_type, options, sort_order
		FROM tracker_templates WHERE category_id = ? ORDER BY sort_order ASC`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding tracker templates by category: %w", err)
	}
	defer rows.Close()

	return scanTrackerTemplates(rows)
}

func (repository *SQLiteTrackerTemplateRepository) Create(ctx context.Context, template models.TrackerTemplate) (models.TrackerTemplate, error) {
	if !template.FieldType.Valid() {
		return models.TrackerTemplate{}, fmt.Errorf("creating tracker template: %w: field type %q", ErrInvalid, template.FieldType)
	}
	if template.ID == "" {
		template.ID = uuid.New().String()
	}

	optionsJSON, err := marshalJSON(template.Options)
	if err != nil {
		return models.TrackerTemplate{}, err
	}

	_, err = repository.database.ExecContext(ctx,
		`INSERT INTO tracker_templates (id, category_id, type, label, field_type, options, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		template.ID, template.CategoryID, template.Type, template.Label,
		template.FieldType, optionsJSON, template.Order,
	)
	if err != nil {
		return models.TrackerTemplate{}, fmt.Errorf("creating tracker template: %w", err)
	}
	return template, nil
}

func (repository *SQLiteTrackerTemplateRepository) Update(ctx context.Context, template models.TrackerTemplate) error {
	if !template.FieldType.Valid() {
		return fmt.Errorf("updating tracker template: %w: field type %q", ErrInvalid, template.FieldType)
	}

	optionsJSON, err := marshalJSON(template.Options)
	if err != nil {
		return err
	}

	result, err := repository.database.ExecContext(ctx,
		`UPDATE tracker_templates SET category_id = ?, type = ?, label = ?, field_type = ?, options = ?, sort_order = ?
		WHERE id = ?`,
		template.CategoryID, template.Type, template.Label, template.FieldType,
		optionsJSON, template.Order, template.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tracker template: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating tracker template: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating tracker template: %w", ErrNotFound)
	}
	return nil
}

func (repository *SQLiteTrackerTemplateRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM tracker_templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tracker template: %w", err)
	}
	return nil
}

func (repository *SQLiteTrackerTemplateRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := repository.database.QueryRowContext(ctx, "SELECT COUNT(*) FROM tracker_templates").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting tracker templates: %w", err)
	}
	return count, nil
}

func (repository *SQLiteTrackerTemplateRepository) FindByID(ctx context.Context, id string) (models.TrackerTemplate, error) {
	row := repository.database.QueryRowContext(ctx,
		`SELECT id, category_id, type, label, field_type, options, sort_order
		FROM tracker_templates WHERE id = ?`, id,
	)
	template, err := scanTrackerTemplateRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TrackerTemplate{}, fmt.Errorf("finding tracker template: %w", ErrNotFound)
	}
	if err != nil {
		return models.TrackerTemplate{}, fmt.Errorf("finding tracker template: %w", err)
	}
	return template, nil
}

func scanTrackerTemplateRow(scan func(dest ...any) error) (models.TrackerTemplate, error) {
	var template models.TrackerTemplate
	var optionsJSON string
	if err := scan(
		&template.ID, &template.CategoryID, &template.Type, &template.Label,
		&template.FieldType, &optionsJSON, &template.Order,
	); err != nil {
		return models.TrackerTemplate{}, err
	}
	if err := unmarshalJSON(optionsJSON, &template.Options); err != nil {
		return models.TrackerTemplate{}, err
	}
	return template, nil
}

func scanTrackerTemplates(rows *sql.Rows) ([]models.TrackerTemplate, error) {
	var templates []models.TrackerTemplate
	for rows.Next() {
		template, err := scanTrackerTemplateRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning tracker template: %w", err)
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}
