package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/resellops/resell-sync/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store and AuditLog using pgxpool. Unlike
// FileStore, each PutItem is a single per-key upsert, so concurrent
// writers are safe.
//
// TODO(test): PostgresStore methods require live Postgres; covered by
// integration tests only.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// GetItem retrieves the record for itemID, or (nil, nil) if unknown.
func (s *PostgresStore) GetItem(ctx context.Context, itemID string) (*domain.InventoryRecord, error) {
	rec := &domain.InventoryRecord{}
	var cleanup []byte
	var soldOn *string

	err := s.pool.QueryRow(ctx, queryGetItem, itemID).Scan(
		&rec.Status, &soldOn, &rec.SoldAt, &cleanup,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying item %s: %w", itemID, err)
	}

	if soldOn != nil {
		rec.SoldOn = domain.Platform(*soldOn)
	}
	if err := json.Unmarshal(cleanup, &rec.Cleanup); err != nil {
		return nil, fmt.Errorf("parsing cleanup flags for %s: %w", itemID, err)
	}
	return rec, nil
}

// PutItem upserts the record for itemID.
func (s *PostgresStore) PutItem(ctx context.Context, itemID string, rec *domain.InventoryRecord) error {
	cleanup, err := json.Marshal(rec.Cleanup)
	if err != nil {
		return fmt.Errorf("encoding cleanup flags: %w", err)
	}

	args := pgx.NamedArgs{
		"item_id": itemID,
		"status":  string(rec.Status),
		"sold_on": string(rec.SoldOn),
		"sold_at": rec.SoldAt,
		"cleanup": cleanup,
	}

	if _, err := s.pool.Exec(ctx, queryUpsertItem, args); err != nil {
		return fmt.Errorf("upserting item %s: %w", itemID, err)
	}
	return nil
}

// Append inserts one audit entry.
func (s *PostgresStore) Append(ctx context.Context, e domain.AuditEntry) error {
	args := pgx.NamedArgs{
		"occurred_at": e.Timestamp,
		"event":       e.Event,
		"item_id":     e.ItemID,
		"platform":    string(e.Platform),
		"mode":        string(e.Mode),
	}

	if _, err := s.pool.Exec(ctx, queryAppendAudit, args); err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}
