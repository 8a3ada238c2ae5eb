// Package bunstore provides a SQLite-backed durable store for go-session
// built on uptrace/bun.
package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/goliatone/go-session"
)

type record struct {
	bun.BaseModel `bun:"table:session_kv"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}

var _ session.Store = &Store{}

// Store persists session fields and the activity log in a single
// key-value table.
type Store struct {
	db *bun.DB
}

// New wraps an existing bun DB. Call Init before first use.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// Open opens (or creates) a SQLite database at dsn and initializes the
// backing table. Use "file::memory:?cache=shared" for an in-memory store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	store := New(bun.NewDB(sqldb, sqlitedialect.New()))
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// Init creates the backing table if needed.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*record)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create session_kv table: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	rec := &record{}
	err := s.db.NewSelect().
		Model(rec).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("select %q: %w", key, err)
	}
	return rec.Value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	rec := &record{Key: key, Value: value}
	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.db.NewDelete().
		Model((*record)(nil)).
		Where("key = ?", key).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
