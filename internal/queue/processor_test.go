package queue

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resellops/resell-sync/internal/dispatch"
	domain "github.com/resellops/resell-sync/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeDispatcher records every dispatched event and can fail specific
// item IDs.
type fakeDispatcher struct {
	events  []dispatch.SaleEvent
	failIDs map[string]bool
}

func (f *fakeDispatcher) Dispatch(
	_ context.Context,
	event dispatch.SaleEvent,
	_ dispatch.Policy,
) (*dispatch.Result, error) {
	f.events = append(f.events, event)
	if f.failIDs[event.ItemID()] {
		return nil, assert.AnError
	}
	return &dispatch.Result{
		Accepted: true,
		Mode:     domain.ModeSimulated,
		Outcomes: map[domain.Platform]dispatch.Outcome{},
	}, nil
}

func writeQueue(t *testing.T, dir, content string) (queuePath, processedPath string) {
	t.Helper()
	queuePath = filepath.Join(dir, "queue.csv")
	processedPath = filepath.Join(dir, "processed.csv")
	require.NoError(t, os.WriteFile(queuePath, []byte(content), 0o640))
	return queuePath, processedPath
}

func TestProcessor_Run(t *testing.T) {
	t.Parallel()

	queuePath, processedPath := writeQueue(t, t.TempDir(),
		"sku,platform\nSKU-1,depop\nSKU-2,poshmark\n")

	fd := &fakeDispatcher{}
	p := NewProcessor(queuePath, processedPath, fd, dispatch.SimulatePolicy(), quietLogger())

	n, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, fd.events, 2)
	assert.Equal(t, "SKU-1", fd.events[0].ItemID())
	assert.Equal(t, domain.PlatformDepop, fd.events[0].SoldOn())
	assert.Equal(t, "SKU-2", fd.events[1].ItemID())

	// Queue reset to its header.
	data, err := os.ReadFile(queuePath)
	require.NoError(t, err)
	assert.Equal(t, "sku,platform\n", string(data))

	// Processed log has header plus both rows.
	data, err = os.ReadFile(processedPath)
	require.NoError(t, err)
	assert.Equal(t, "sku,platform\nSKU-1,depop\nSKU-2,poshmark\n", string(data))
}

func TestProcessor_Run_MissingQueueFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fd := &fakeDispatcher{}
	p := NewProcessor(
		filepath.Join(dir, "missing.csv"),
		filepath.Join(dir, "processed.csv"),
		fd, dispatch.SimulatePolicy(), quietLogger(),
	)

	n, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, fd.events)
}

func TestProcessor_Run_SkipsInvalidRows(t *testing.T) {
	t.Parallel()

	queuePath, processedPath := writeQueue(t, t.TempDir(),
		"sku,platform\n"+
			"SKU-1,depop\n"+
			",depop\n"+
			"SKU-2,\n"+
			"SKU-3,mercari\n"+
			"SKU-4,ebay\n")

	fd := &fakeDispatcher{}
	p := NewProcessor(queuePath, processedPath, fd, dispatch.SimulatePolicy(), quietLogger())

	n, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, fd.events, 2)
	assert.Equal(t, "SKU-1", fd.events[0].ItemID())
	assert.Equal(t, "SKU-4", fd.events[1].ItemID())

	// Invalid rows never reach the processed log.
	data, err := os.ReadFile(processedPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "SKU-2")
	assert.NotContains(t, string(data), "SKU-3")
}

func TestProcessor_Run_DispatchFailureDoesNotStopSweep(t *testing.T) {
	t.Parallel()

	queuePath, processedPath := writeQueue(t, t.TempDir(),
		"sku,platform\nSKU-1,depop\nSKU-2,poshmark\n")

	fd := &fakeDispatcher{failIDs: map[string]bool{"SKU-1": true}}
	p := NewProcessor(queuePath, processedPath, fd, dispatch.SimulatePolicy(), quietLogger())

	n, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Failed row stays out of the processed log for manual re-queue.
	data, err := os.ReadFile(processedPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "SKU-1")
	assert.Contains(t, string(data), "SKU-2")
}

func TestProcessor_Run_ProcessedLogIsAppendOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	queuePath, processedPath := writeQueue(t, dir, "sku,platform\nSKU-1,depop\n")

	fd := &fakeDispatcher{}
	p := NewProcessor(queuePath, processedPath, fd, dispatch.SimulatePolicy(), quietLogger())

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	// Second sweep with a fresh row appends, never rewrites.
	require.NoError(t, os.WriteFile(queuePath, []byte("sku,platform\nSKU-2,ebay\n"), 0o640))
	_, err = p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(processedPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, []string{"sku,platform", "SKU-1,depop", "SKU-2,ebay"}, lines)
}

func TestProcessor_Run_HeaderOnlyQueue(t *testing.T) {
	t.Parallel()

	queuePath, processedPath := writeQueue(t, t.TempDir(), "sku,platform\n")

	fd := &fakeDispatcher{}
	p := NewProcessor(queuePath, processedPath, fd, dispatch.SimulatePolicy(), quietLogger())

	n, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, fd.events)
}
