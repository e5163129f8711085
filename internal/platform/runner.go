package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	domain "github.com/resellops/resell-sync/pkg/types"
)

// RunnerAdapter shells out to an external browser-automation runner for
// platforms without an API. The runner is an opaque best-effort UI
// action: it receives the platform and item ID as arguments and
// signals the outcome through its exit code.
//
// Exit codes: 0 success, 4 item not found, 3 auth failure; anything
// else is transient. The runner must never prompt; interactive login
// flows belong outside this process.
type RunnerAdapter struct {
	platform domain.Platform
	command  string
	args     []string
	log      *slog.Logger
}

// Runner exit codes.
const (
	runnerExitAuthFailure  = 3
	runnerExitItemNotFound = 4
)

// NewRunnerAdapter creates an adapter invoking command for p. Extra
// args are passed before the platform and item ID.
func NewRunnerAdapter(p domain.Platform, command string, args []string, log *slog.Logger) *RunnerAdapter {
	if log == nil {
		log = slog.Default()
	}
	return &RunnerAdapter{platform: p, command: command, args: args, log: log}
}

// Platform implements Adapter.
func (a *RunnerAdapter) Platform() domain.Platform {
	return a.platform
}

// Delist implements Adapter by running the external command.
func (a *RunnerAdapter) Delist(ctx context.Context, itemID string) error {
	args := append(append([]string{}, a.args...), string(a.platform), itemID)
	cmd := exec.CommandContext(ctx, a.command, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	a.log.Warn("runner failed",
		"platform", a.platform,
		"item_id", itemID,
		"stderr", strings.TrimSpace(stderr.String()),
		"error", err,
	)

	kind := KindTransientFailure
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case runnerExitItemNotFound:
			kind = KindItemNotFound
		case runnerExitAuthFailure:
			kind = KindAuthFailure
		}
	}

	return &Error{
		Kind:     kind,
		Platform: a.platform,
		Err:      fmt.Errorf("runner %s: %w", a.command, err),
	}
}
