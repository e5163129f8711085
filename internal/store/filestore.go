package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/resellops/resell-sync/pkg/types"
)

// FileStore implements Store as a single JSON object on disk, keyed by
// item ID. Every PutItem rewrites the whole file via an atomic rename.
//
// The read-modify-write cycle is only safe under single-writer
// discipline: one process, serialized dispatches. An in-process mutex
// enforces this within the process; cross-process serialization is the
// deployment's responsibility. Use PostgresStore when multiple writers
// are required.
type FileStore struct {
	path string

	mu sync.Mutex
}

// NewFileStore creates a FileStore persisting to the given path. The
// parent directory is created if missing; the file itself is created
// lazily on first write.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// GetItem returns the record for itemID, or (nil, nil) if unknown.
func (s *FileStore) GetItem(_ context.Context, itemID string) (*domain.InventoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	rec, ok := state[itemID]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

// PutItem overwrites the record for itemID and persists the full state.
func (s *FileStore) PutItem(_ context.Context, itemID string, rec *domain.InventoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked()
	if err != nil {
		return err
	}
	state[itemID] = rec
	return s.saveLocked(state)
}

// Ping verifies the state directory is writable.
func (s *FileStore) Ping(_ context.Context) error {
	f, err := os.CreateTemp(filepath.Dir(s.path), ".ping-*")
	if err != nil {
		return fmt.Errorf("state directory not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// Close is a no-op; FileStore holds no open handles between calls.
func (*FileStore) Close() {}

func (s *FileStore) loadLocked() (map[string]*domain.InventoryRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]*domain.InventoryRecord), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	state := make(map[string]*domain.InventoryRecord)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("parsing state file: %w", err)
		}
	}
	return state, nil
}

func (s *FileStore) saveLocked(state map[string]*domain.InventoryRecord) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	// Write-then-rename so a crash mid-write never truncates the
	// previous state.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
