package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/resellops/resell-sync/pkg/types"
)

const auditTimeLayout = "2006-01-02 15:04:05"

// FileAuditLog implements AuditLog as a line-oriented append-only text
// file, one pipe-delimited line per entry:
//
//	timestamp | event | item_id | platform | mode
//
// Lines are appended with O_APPEND; the file is never rewritten.
// Timestamps are advisory; ordering is append order.
type FileAuditLog struct {
	path string

	mu sync.Mutex
}

// NewFileAuditLog creates an audit log appending to the given path.
func NewFileAuditLog(path string) (*FileAuditLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	return &FileAuditLog{path: path}, nil
}

// Append writes one entry. An I/O failure here is fatal for the
// dispatch in progress; the caller retries the whole event.
func (l *FileAuditLog) Append(_ context.Context, e domain.AuditEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s | %s | %s | %s | %s\n",
		e.Timestamp.Format(auditTimeLayout), e.Event, e.ItemID, e.Platform, e.Mode)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}
