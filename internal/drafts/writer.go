package drafts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/resellops/resell-sync/internal/ebay"
	"github.com/resellops/resell-sync/internal/metrics"
)

const stampLayout = "20060102_150405"

// Writer persists draft files and a debug snapshot of the fetched item
// under a drafts directory.
type Writer struct {
	dir     string
	nowFunc func() time.Time
}

// NewWriter creates a Writer rooted at dir, creating it if missing.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating drafts directory: %w", err)
	}
	return &Writer{dir: dir, nowFunc: time.Now}, nil
}

// CrosslistFiles holds the paths written by WriteCrosslist.
type CrosslistFiles struct {
	DepopPath    string
	PoshmarkPath string
	DebugPath    string
}

// WriteCrosslist renders both drafts for item and writes them next to
// a JSON snapshot of the fetched fields for later inspection.
func (w *Writer) WriteCrosslist(item *ebay.Item) (*CrosslistFiles, error) {
	stamp := w.nowFunc().Format(stampLayout)

	files := &CrosslistFiles{
		DepopPath:    filepath.Join(w.dir, fmt.Sprintf("draft_depop_%s_%s.txt", item.ItemID, stamp)),
		PoshmarkPath: filepath.Join(w.dir, fmt.Sprintf("draft_posh_%s_%s.txt", item.ItemID, stamp)),
		DebugPath:    filepath.Join(w.dir, fmt.Sprintf("ebay_%s.json", item.ItemID)),
	}

	if err := os.WriteFile(files.DepopPath, []byte(BuildDepop(item)+"\n"), 0o640); err != nil {
		return nil, fmt.Errorf("writing depop draft: %w", err)
	}
	metrics.CrosslistDraftsTotal.WithLabelValues("depop").Inc()

	if err := os.WriteFile(files.PoshmarkPath, []byte(BuildPoshmark(item)+"\n"), 0o640); err != nil {
		return nil, fmt.Errorf("writing poshmark draft: %w", err)
	}
	metrics.CrosslistDraftsTotal.WithLabelValues("poshmark").Inc()

	snapshot := map[string]any{
		"item_id":     item.ItemID,
		"title":       item.Title,
		"price":       item.Price,
		"category":    item.Category,
		"condition":   item.Condition,
		"pictures":    item.PictureURLs,
		"specifics":   item.Specifics,
		"description": item.Description,
		"fetched_at":  w.nowFunc().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding debug snapshot: %w", err)
	}
	if err := os.WriteFile(files.DebugPath, data, 0o640); err != nil {
		return nil, fmt.Errorf("writing debug snapshot: %w", err)
	}

	return files, nil
}
