package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/storage"
)

// SqlStore keeps slots in a single kv table, one row per key. The schema is
// applied by initialization.SetupDB before the store is handed out.
type SqlStore struct {
	db *sql.DB
}

func New(db *sql.DB) *SqlStore {
	return &SqlStore{db: db}
}

func (s *SqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key)
	var value []byte
	err := row.Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotExist
		}
		log.Error().Err(err).Str("key", key).Msg("kv select failed")
		return nil, storage.ErrInternal
	}
	return value, nil
}

func (s *SqlStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv(key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("kv upsert failed")
		return storage.ErrInternal
	}
	return nil
}

func (s *SqlStore) Remove(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("kv delete failed")
		return storage.ErrInternal
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return storage.ErrNotExist
	}
	return nil
}
