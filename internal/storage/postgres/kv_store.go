// Package postgres backs the key-value store contract with a kv_entries
// table, for deployments that want the demo state in a database instead of
// local files.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type KVStore struct {
	pool *pgxpool.Pool
}

func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM kv_entries WHERE key = $1`
	var raw string
	err := s.pool.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(raw), true, nil
}

func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	const stmt = `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, stmt, key, string(value)); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	const stmt = `DELETE FROM kv_entries WHERE key = $1`
	if _, err := s.pool.Exec(ctx, stmt, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
