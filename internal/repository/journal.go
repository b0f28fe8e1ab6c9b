package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/google/uuid"
)

// Journal entries are append-only; there is no update or delete.
type JournalRepository interface {
	FindByDate(ctx context.Context, date string) ([]models.JournalEntry, error)
	FindAll(ctx context.Context) ([]models.JournalEntry, error)
	Create(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
}

type SQLiteJournalRepository struct {
	database *sql.DB
}

func NewJournalRepository(database *sql.DB) *SQLiteJournalRepository {
	return &SQLiteJournalRepository{database: database}
}

func (repository *SQLiteJournalRepository) FindByDate(ctx context.Context, date string) ([]models.JournalEntry, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, text, category, date, timestamp
		FROM journal_entries WHERE date = ? ORDER BY timestamp ASC`, date,
	)
	if err != nil {
		return nil, fmt.Errorf("finding journal entries by date: %w", err)
	}
	defer rows.Close()

	return scanJournalEntries(rows)
}

func (repository *SQLiteJournalRepository) FindAll(ctx context.Context) ([]models.JournalEntry, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT id, text, category, date, timestamp FROM journal_entries ORDER BY timestamp DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("finding journal entries: %w", err)
	}
	defer rows.Close()

	return scanJournalEntries(rows)
}

func (repository *SQLiteJournalRepository) Create(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Date == "" {
		entry.Date = time.Now().Format("2006-01-02")
	}
	entry.Timestamp = time.Now()

	_, err := repository.database.ExecContext(ctx,
		"INSERT INTO journal_entries (id, text, category, date, timestamp) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.Text, entry.Category, entry.Date, entry.Timestamp,
	)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("creating journal entry: %w", err)
	}
	return entry, nil
}

func scanJournalEntries(rows *sql.Rows) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	for rows.Next() {
		var entry models.JournalEntry
		if err := rows.Scan(&entry.ID, &entry.Text, &entry.Category, &entry.Date, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
