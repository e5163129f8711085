package drafts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteCrosslist(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "drafts")
	w, err := NewWriter(dir)
	require.NoError(t, err)
	w.nowFunc = func() time.Time {
		return time.Date(2026, 3, 1, 14, 30, 5, 0, time.UTC)
	}

	files, err := w.WriteCrosslist(sampleItem())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "draft_depop_166123456789_20260301_143005.txt"), files.DepopPath)
	assert.Equal(t, filepath.Join(dir, "draft_posh_166123456789_20260301_143005.txt"), files.PoshmarkPath)
	assert.Equal(t, filepath.Join(dir, "ebay_166123456789.json"), files.DebugPath)

	depop, err := os.ReadFile(files.DepopPath)
	require.NoError(t, err)
	assert.Contains(t, string(depop), "=== DEPOP DRAFT ===")

	posh, err := os.ReadFile(files.PoshmarkPath)
	require.NoError(t, err)
	assert.Contains(t, string(posh), "=== POSHMARK DRAFT ===")

	raw, err := os.ReadFile(files.DebugPath)
	require.NoError(t, err)

	var snapshot map[string]any
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	assert.Equal(t, "166123456789", snapshot["item_id"])
	assert.Equal(t, "45.00", snapshot["price"])
	assert.Equal(t, "2026-03-01T14:30:05Z", snapshot["fetched_at"])
}

func TestNewWriter_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b", "drafts")
	_, err := NewWriter(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
