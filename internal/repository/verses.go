package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faithfullife/life-dashboard/internal/models"
)

type VerseRepository interface {
	FindByReligion(ctx context.Context, religion string) ([]models.Verse, error)
	PutForReligion(ctx context.Context, religion string, byCategory map[string][]string) error
	LastUpdated(ctx context.Context, religion string) (time.Time, error)
}

type SQLiteVerseRepository struct {
	database *sql.DB
}

func NewVerseRepository(database *sql.DB) *SQLiteVerseRepository {
	return &SQLiteVerseRepository{database: database}
}

func (repository *SQLiteVerseRepository) FindByReligion(ctx context.Context, religion string) ([]models.Verse, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, religion, category_id, verses, updated_at
		FROM verses WHERE religion = ?`, religion,
	)
	if err != nil {
		return nil, fmt.Errorf("finding verses: %w", err)
	}
	defer rows.Close()

	var verses []models.Verse
	for rows.Next() {
		var verse models.Verse
		var versesJSON string
		if err := rows.Scan(&verse.ID, &verse.Religion, &verse.CategoryID, &versesJSON, &verse.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning verse: %w", err)
		}
		if err := unmarshalJSON(versesJSON, &verse.Verses); err != nil {
			return nil, err
		}
		verses = append(verses, verse)
	}
	return verses, rows.Err()
}

// PutForReligion upserts one row per category, keyed religion_categoryId.
func (repository *SQLiteVerseRepository) PutForReligion(ctx context.Context, religion string, byCategory map[string][]string) error {
	now := time.Now()
	for categoryID, lines := range byCategory {
		versesJSON, err := marshalJSON(lines)
		if err != nil {
			return err
		}
		id := religion + "_" + categoryID
		_, err = repository.database.ExecContext(ctx,
			`INSERT INTO verses (id, religion, category_id, verses, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				verses = excluded.verses,
				updated_at = excluded.updated_at`,
			id, religion, categoryID, versesJSON, now,
		)
		if err != nil {
			return fmt.Errorf("putting verses for %s: %w", categoryID, err)
		}
	}
	return nil
}

// LastUpdated reports the most recent write for a religion; the zero time
// when nothing is cached. Reads the column directly rather than MAX() so the
// driver keeps the TIMESTAMP decltype and scans into time.Time.
func (repository *SQLiteVerseRepository) LastUpdated(ctx context.Context, religion string) (time.Time, error) {
	var updatedAt time.Time
	err := repository.database.QueryRowContext(ctx,
		"SELECT updated_at FROM verses WHERE religion = ? ORDER BY updated_at DESC LIMIT 1",
		religion,
	).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading verse freshness: %w", err)
	}
	return updatedAt, nil
}
