// Package migrations embeds the Postgres schema of the Veepo API.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Up is called without a connection.
var ErrNilDB = errors.New("db is nil")

// Up applies every pending migration and returns the versions it applied,
// oldest first. An up-to-date schema yields an empty slice.
func Up(ctx context.Context, db *sql.DB) ([]int64, error) {
	if db == nil {
		return nil, fmt.Errorf("migration error: %w", ErrNilDB)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, embedMigrations)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}
