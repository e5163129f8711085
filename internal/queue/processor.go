// Package queue processes the CSV batch queue of pending sales. Each
// row is dispatched in turn; processed rows move to an append-only
// processed log and the queue file is reset to its header.
package queue

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/resellops/resell-sync/internal/dispatch"
	"github.com/resellops/resell-sync/internal/metrics"
)

const queueHeader = "sku,platform"

// Dispatcher is the slice of the dispatch core the processor needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, event dispatch.SaleEvent, policy dispatch.Policy) (*dispatch.Result, error)
}

// Processor sweeps a CSV queue file of (sku, platform) rows.
type Processor struct {
	queuePath     string
	processedPath string
	dispatcher    Dispatcher
	policy        dispatch.Policy
	log           *slog.Logger
}

// NewProcessor creates a queue processor. Every dispatched row uses the
// same policy; retry means re-adding the row to the queue.
func NewProcessor(
	queuePath, processedPath string,
	d Dispatcher,
	policy dispatch.Policy,
	log *slog.Logger,
) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{
		queuePath:     queuePath,
		processedPath: processedPath,
		dispatcher:    d,
		policy:        policy,
		log:           log,
	}
}

// Run processes every pending row, appends each processed row to the
// processed log, then truncates the queue back to its header. A
// missing queue file is an empty queue, not an error. Invalid rows are
// skipped with a log line; a dispatch failure on one row does not stop
// the sweep.
func (p *Processor) Run(ctx context.Context) (int, error) {
	rows, err := p.readQueue()
	if err != nil {
		metrics.QueueRunErrorsTotal.Inc()
		return 0, err
	}
	if len(rows) == 0 {
		p.log.Debug("queue empty", "path", p.queuePath)
		return 0, nil
	}

	processed := 0
	for _, row := range rows {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}

		event, err := dispatch.FromCSVRow(row.sku, row.platform)
		if err != nil {
			p.log.Warn("skipping invalid queue row",
				"sku", row.sku,
				"platform", row.platform,
				"error", err,
			)
			metrics.QueueRowsSkippedTotal.Inc()
			continue
		}

		result, err := p.dispatcher.Dispatch(ctx, event, p.policy)
		if err != nil {
			// Row stays out of the processed log; the operator
			// re-queues it.
			p.log.Error("queue dispatch failed", "sku", row.sku, "error", err)
			continue
		}

		if err := p.appendProcessed(row); err != nil {
			return processed, err
		}
		processed++
		metrics.QueueRowsProcessedTotal.Inc()

		p.log.Info("queue row processed",
			"sku", row.sku,
			"platform", row.platform,
			"mode", result.Mode,
			"failed_targets", len(result.Errors),
		)
	}

	if err := p.resetQueue(); err != nil {
		metrics.QueueRunErrorsTotal.Inc()
		return processed, err
	}
	return processed, nil
}

type row struct {
	sku      string
	platform string
}

func (p *Processor) readQueue() ([]row, error) {
	f, err := os.Open(p.queuePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening queue: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading queue: %w", err)
	}

	var rows []row
	for i, rec := range records {
		if i == 0 && isHeader(rec) {
			continue
		}
		if len(rec) < 2 {
			continue
		}
		sku := strings.TrimSpace(rec[0])
		platform := strings.TrimSpace(rec[1])
		if sku == "" || platform == "" {
			continue
		}
		rows = append(rows, row{sku: sku, platform: platform})
	}
	return rows, nil
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "sku")
}

// appendProcessed adds one row to the processed log, writing the
// header when the file is new. The log is append-only.
func (p *Processor) appendProcessed(r row) error {
	if err := os.MkdirAll(filepath.Dir(p.processedPath), 0o750); err != nil {
		return fmt.Errorf("creating processed log directory: %w", err)
	}

	_, statErr := os.Stat(p.processedPath)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(p.processedPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return fmt.Errorf("opening processed log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write([]string{"sku", "platform"}); err != nil {
			return fmt.Errorf("writing processed log header: %w", err)
		}
	}
	if err := w.Write([]string{r.sku, r.platform}); err != nil {
		return fmt.Errorf("writing processed row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (p *Processor) resetQueue() error {
	if err := os.WriteFile(p.queuePath, []byte(queueHeader+"\n"), 0o640); err != nil {
		return fmt.Errorf("resetting queue: %w", err)
	}
	return nil
}
