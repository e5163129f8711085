package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/resellops/resell-sync/pkg/types"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return s
}

func TestFileStore_GetItem_Unknown(t *testing.T) {
	t.Parallel()

	s := newTestFileStore(t)

	rec, err := s.GetItem(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestFileStore_PutGetRoundtrip(t *testing.T) {
	t.Parallel()

	s := newTestFileStore(t)
	ctx := context.Background()

	soldAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &domain.InventoryRecord{
		Status: domain.StatusSold,
		SoldOn: domain.PlatformDepop,
		SoldAt: &soldAt,
		Cleanup: map[domain.Platform]bool{
			domain.PlatformEbay:     true,
			domain.PlatformDepop:    false,
			domain.PlatformPoshmark: false,
		},
	}
	require.NoError(t, s.PutItem(ctx, "SKU-1", rec))

	got, err := s.GetItem(ctx, "SKU-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusSold, got.Status)
	assert.Equal(t, domain.PlatformDepop, got.SoldOn)
	require.NotNil(t, got.SoldAt)
	assert.True(t, soldAt.Equal(*got.SoldAt))
	assert.True(t, got.Cleanup[domain.PlatformEbay])
	assert.False(t, got.Cleanup[domain.PlatformPoshmark])
}

func TestFileStore_PutItem_OverwritesExisting(t *testing.T) {
	t.Parallel()

	s := newTestFileStore(t)
	ctx := context.Background()

	first := domain.NewInventoryRecord()
	require.NoError(t, s.PutItem(ctx, "SKU-1", first))

	second := domain.NewInventoryRecord()
	second.Status = domain.StatusSold
	second.SoldOn = domain.PlatformEbay
	require.NoError(t, s.PutItem(ctx, "SKU-1", second))

	got, err := s.GetItem(ctx, "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSold, got.Status)
	assert.Equal(t, domain.PlatformEbay, got.SoldOn)
}

func TestFileStore_MultipleItems(t *testing.T) {
	t.Parallel()

	s := newTestFileStore(t)
	ctx := context.Background()

	a := domain.NewInventoryRecord()
	a.Status = domain.StatusSold
	b := domain.NewInventoryRecord()

	require.NoError(t, s.PutItem(ctx, "SKU-A", a))
	require.NoError(t, s.PutItem(ctx, "SKU-B", b))

	gotA, err := s.GetItem(ctx, "SKU-A")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSold, gotA.Status)

	gotB, err := s.GetItem(ctx, "SKU-B")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, gotB.Status)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	s1, err := NewFileStore(path)
	require.NoError(t, err)
	rec := domain.NewInventoryRecord()
	rec.Status = domain.StatusSold
	rec.SoldOn = domain.PlatformPoshmark
	require.NoError(t, s1.PutItem(ctx, "SKU-1", rec))
	s1.Close()

	s2, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := s2.GetItem(ctx, "SKU-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.PlatformPoshmark, got.SoldOn)
}

func TestFileStore_FileIsValidJSONObject(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.PutItem(context.Background(), "SKU-1", domain.NewInventoryRecord()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var state map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Contains(t, state, "SKU-1")
}

func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o640))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.GetItem(context.Background(), "SKU-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing state file")
}

func TestFileStore_Ping(t *testing.T) {
	t.Parallel()

	s := newTestFileStore(t)
	require.NoError(t, s.Ping(context.Background()))
}
