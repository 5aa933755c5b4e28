package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffgate/attendance-gate-go/internal/pkg/database"
	"github.com/staffgate/attendance-gate-go/internal/pkg/kvstore"
)

type kvStoreRepository struct {
	db *database.DB
}

// Get implements kvstore.Store. Absent keys read as empty string.
func (r *kvStoreRepository) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT value
		FROM kv_entries
		WHERE key = $1
	`

	var value string
	err := q.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key: %w", err)
	}

	return value, nil
}

// Set implements kvstore.Store.
func (r *kvStoreRepository) Set(ctx context.Context, key string, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	return nil
}

// Delete implements kvstore.Store. Deleting an absent key is not an error.
func (r *kvStoreRepository) Delete(ctx context.Context, key string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM kv_entries
		WHERE key = $1
	`

	if _, err := q.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	return nil
}

// Atomically implements kvstore.Atomic by running fn inside a database
// transaction; Get/Set/Delete calls through fn's context join it.
func (r *kvStoreRepository) Atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.db, fn)
}

func NewKVStoreRepository(db *database.DB) kvstore.Store {
	return &kvStoreRepository{db: db}
}
