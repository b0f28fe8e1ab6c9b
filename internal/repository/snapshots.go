package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/google/uuid"
)

type SnapshotRepository interface {
	FindByDate(ctx context.Context, date, categoryID string) (models.DailySnapshot, error)
	FindAll(ctx context.Context) ([]models.DailySnapshot, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.DailySnapshot, error)
	Upsert(ctx context.Context, snapshot models.DailySnapshot) error
	ApplyRollover(ctx context.Context, date string, snapshots []models.DailySnapshot, entries []models.JournalEntry) error
}

type SQLiteSnapshotRepository struct {
	database *sql.DB
}

func NewSnapshotRepository(database *sql.DB) *SQLiteSnapshotRepository {
	return &SQLiteSnapshotRepository{database: database}
}

const snapshotColumns = `id, date, category_id, todos_done, todos_not_done, tracker_log, goals_log, journal_extra, created_at`

func (repository *SQLiteSnapshotRepository) FindByDate(ctx context.Context, date, categoryID string) (models.DailySnapshot, error) {
	row := repository.database.QueryRowContext(ctx,
		"SELECT "+snapshotColumns+" FROM daily_snapshots WHERE date = ? AND category_id = ?",
		date, categoryID,
	)
	snapshot, err := scanSnapshotRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailySnapshot{}, fmt.Errorf("finding snapshot: %w", ErrNotFound)
	}
	if err != nil {
		return models.DailySnapshot{}, fmt.Errorf("finding snapshot: %w", err)
	}
	return snapshot, nil
}

func (repository *SQLiteSnapshotRepository) FindAll(ctx context.Context) ([]models.DailySnapshot, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT "+snapshotColumns+" FROM daily_snapshots ORDER BY date DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("finding snapshots: %w", err)
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

func (repository *SQLiteSnapshotRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.DailySnapshot, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT "+snapshotColumns+" FROM daily_snapshots WHERE category_id = ? ORDER BY date DESC",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding snapshots by category: %w", err)
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

func (repository *SQLiteSnapshotRepository) Upsert(ctx context.Context, snapshot models.DailySnapshot) error {
	return upsertSnapshot(ctx, repository.database, snapshot)
}

// ApplyRollover writes the day's snapshots and journal lines and prunes
// completed todos in one transaction, so a failed rollover leaves the store
// untouched and can be retried for the same date.
func (repository *SQLiteSnapshotRepository) ApplyRollover(ctx context.Context, date string, snapshots []models.DailySnapshot, entries []models.JournalEntry) error {
	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rollover transaction: %w", err)
	}
	defer transaction.Rollback()

	for _, snapshot := range snapshots {
		if err := upsertSnapshot(ctx, transaction, snapshot); err != nil {
			return err
		}
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = now
		}
		if _, err := transaction.ExecContext(ctx,
			"INSERT INTO journal_entries (id, text, category, date, timestamp) VALUES (?, ?, ?, ?, ?)",
			entry.ID, entry.Text, entry.Category, entry.Date, entry.Timestamp,
		); err != nil {
			return fmt.Errorf("writing rollover journal entry: %w", err)
		}
	}

	if _, err := transaction.ExecContext(ctx,
		"DELETE FROM todos WHERE date = ? AND completed = 1", date,
	); err != nil {
		return fmt.Errorf("pruning completed todos: %w", err)
	}

	return transaction.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertSnapshot(ctx context.Context, db execer, snapshot models.DailySnapshot) error {
	snapshot.ID = models.SnapshotID(snapshot.Date, snapshot.CategoryID)
	snapshot.CreatedAt = time.Now()

	todosDone, err := marshalJSON(snapshot.TodosDone)
	if err != nil {
		return err
	}
	todosNotDone, err := marshalJSON(snapshot.TodosNotDone)
	if err != nil {
		return err
	}
	trackerLog, err := marshalJSON(snapshot.TrackerLog)
	if err != nil {
		return err
	}
	goalsLog, err := marshalJSON(snapshot.GoalsLog)
	if err != nil {
		return err
	}
	journalExtra, err := marshalJSON(snapshot.JournalExtra)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO daily_snapshots (id, date, category_id, todos_done, todos_not_done, tracker_log, goals_log, journal_extra, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			todos_done = excluded.todos_done,
			todos_not_done = excluded.todos_not_done,
			tracker_log = excluded.tracker_log,
			goals_log = excluded.goals_log,
			journal_extra = excluded.journal_extra,
			created_at = excluded.created_at`,
		snapshot.ID, snapshot.Date, snapshot.CategoryID,
		todosDone, todosNotDone, trackerLog, goalsLog, journalExtra,
		snapshot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}
	return nil
}

func scanSnapshotRow(scan func(dest ...any) error) (models.DailySnapshot, error) {
	var snapshot models.DailySnapshot
	var todosDone, todosNotDone, trackerLog, goalsLog, journalExtra string
	if err := scan(
		&snapshot.ID, &snapshot.Date, &snapshot.CategoryID,
		&todosDone, &todosNotDone, &trackerLog, &goalsLog, &journalExtra,
		&snapshot.CreatedAt,
	); err != nil {
		return models.DailySnapshot{}, err
	}
	if err := unmarshalJSON(todosDone, &snapshot.TodosDone); err != nil {
		return models.DailySnapshot{}, err
	}
	if err := unmarshalJSON(todosNotDone, &snapshot.TodosNotDone); err != nil {
		return models.DailySnapshot{}, err
	}
	if err := unmarshalJSON(trackerLog, &snapshot.TrackerLog); err != nil {
		return models.DailySnapshot{}, err
	}
	if err := unmarshalJSON(goalsLog, &snapshot.GoalsLog); err != nil {
		return models.DailySnapshot{}, err
	}
	if err := unmarshalJSON(journalExtra, &snapshot.JournalExtra); err != nil {
		return models.DailySnapshot{}, err
	}
	return snapshot, nil
}

func scanSnapshots(rows *sql.Rows) ([]models.DailySnapshot, error) {
	var snapshots []models.DailySnapshot
	for rows.Next() {
		snapshot, err := scanSnapshotRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}
