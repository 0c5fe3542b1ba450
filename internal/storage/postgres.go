package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// PostgresStore keeps each namespace as one row of the kv_store table.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type kvRow struct {
	Data    []byte `db:"data"`
	Version int64  `db:"version"`
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, int64, error) {
	query := `
		SELECT data, version
		FROM kv_store
		WHERE key = $1
	`

	var row kvRow
	err := s.db.GetContext(ctx, &row, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	return row.Data, row.Version, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, data []byte, version int64) (int64, error) {
	var (
		query string
		args  []interface{}
	)

	if version == 0 {
		query = `
			INSERT INTO kv_store (key, data, version)
			VALUES ($1, $2, 1)
			ON CONFLICT (key) DO NOTHING
			RETURNING version
		`
		args = []interface{}{key, string(data)}
	} else {
		query = `
			UPDATE kv_store
			SET data = $2, version = version + 1, updated_at = NOW()
			WHERE key = $1 AND version = $3
			RETURNING version
		`
		args = []interface{}{key, string(data), version}
	}

	var next int64
	err := s.db.GetContext(ctx, &next, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrVersionConflict
	}
	if err != nil {
		return 0, err
	}

	return next, nil
}

func (s *PostgresStore) Name() string {
	return "postgres"
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
