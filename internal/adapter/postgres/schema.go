package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/qaboard-backend/migrations"
)

// Schema reports the migration state of the database behind a pool.
// The server never migrates on its own; readiness fails until cmd/migrate
// has applied every embedded migration.
type Schema struct {
	provider *goose.Provider
}

// NewSchema opens a database/sql view of pool for goose. Closing the pool
// releases it.
func NewSchema(pool *pgxpool.Pool) (*Schema, error) {
	provider, err := migrations.NewProvider(stdlib.OpenDBFromPool(pool))
	if err != nil {
		return nil, err
	}
	return &Schema{provider: provider}, nil
}

// Version returns the highest applied migration version.
func (s *Schema) Version(ctx context.Context) (int64, error) {
	v, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}
	return v, nil
}

// Pending reports whether embedded migrations have not been applied yet.
func (s *Schema) Pending(ctx context.Context) (bool, error) {
	pending, err := s.provider.HasPending(ctx)
	if err != nil {
		return false, fmt.Errorf("schema pending: %w", err)
	}
	return pending, nil
}
