// Package store defines the durable state and audit contracts for
// resell-sync. The dispatch core depends on these interfaces, never on
// concrete implementations, so it can be tested with mocks. Two
// backends exist: a single-writer file backend (a JSON state file plus
// an append-only audit log), and a PostgreSQL backend for deployments
// that need per-key atomic updates.
package store

import (
	"context"
	"errors"

	domain "github.com/resellops/resell-sync/pkg/types"
)

// ErrReadOnly is returned by audit implementations that refuse rewrites.
var ErrReadOnly = errors.New("audit log is append-only")

// Store persists inventory records keyed by item ID.
//
// GetItem returns (nil, nil) for an item that has never been seen;
// callers treat that identically to a known item.
type Store interface {
	GetItem(ctx context.Context, itemID string) (*domain.InventoryRecord, error)
	PutItem(ctx context.Context, itemID string, rec *domain.InventoryRecord) error
	Ping(ctx context.Context) error
	Close()
}

// AuditLog records every processed dispatch. Write-only from the
// core's perspective; entries are never rewritten or deleted.
type AuditLog interface {
	Append(ctx context.Context, e domain.AuditEntry) error
}
