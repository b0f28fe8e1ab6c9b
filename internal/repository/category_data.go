package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// CategoryDataRepository stores free-form per-category state as a JSON blob.
// Finance records, the family roster and similar page state live here.
type CategoryDataRepository interface {
	Get(ctx context.Context, categoryID string) (map[string]any, error)
	Set(ctx context.Context, categoryID string, data map[string]any) error
	Mutate(ctx context.Context, categoryID string, fn func(data map[string]any) error) error
}

type SQLiteCategoryDataRepository struct {
	database *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCategoryDataRepository(database *sql.DB) *SQLiteCategoryDataRepository {
	return &SQLiteCategoryDataRepository{
		database: database,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (repository *SQLiteCategoryDataRepository) Get(ctx context.Context, categoryID string) (map[string]any, error) {
	var dataJSON string
	err := repository.database.QueryRowContext(ctx,
		"SELECT data FROM category_data WHERE category_id = ?", categoryID,
	).Scan(&dataJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category data: %w", err)
	}

	data := map[string]any{}
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return nil, fmt.Errorf("unmarshalling category data: %w", err)
	}
	return data, nil
}

func (repository *SQLiteCategoryDataRepository) Set(ctx context.Context, categoryID string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshalling category data: %w", err)
	}

	_, err = repository.database.ExecContext(ctx,
		`INSERT INTO category_data (category_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (category_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		categoryID, string(dataJSON), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("setting category data: %w", err)
	}
	return nil
}

// Mutate applies a read-modify-write to one category's blob under a
// per-category lock so concurrent edits to different keys don't clobber
// each other.
func (repository *SQLiteCategoryDataRepository) Mutate(ctx context.Context, categoryID string, fn func(data map[string]any) error) error {
	lock := repository.lockFor(categoryID)
	lock.Lock()
	defer lock.Unlock()

	data, err := repository.Get(ctx, categoryID)
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return repository.Set(ctx, categoryID, data)
}

func (repository *SQLiteCategoryDataRepository) lockFor(categoryID string) *sync.Mutex {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	lock, ok := repository.locks[categoryID]
	if !ok {
		lock = &sync.Mutex{}
		repository.locks[categoryID] = lock
	}
	return lock
}
