package platform

import (
	"context"
	"errors"

	domain "github.com/resellops/resell-sync/pkg/types"
)

// ErrManualActionRequired signals that a platform has no automated
// delist path and an operator must remove the listing by hand.
var ErrManualActionRequired = errors.New("manual action required")

// ManualAdapter is the default adapter for platforms without an API.
// Depop and Poshmark only expose their inventories through the browser,
// so unless an external runner is configured the dispatch surfaces a
// distinct manual-action outcome instead of blocking on a human.
type ManualAdapter struct {
	platform domain.Platform
}

// NewManualAdapter creates an adapter that always requests manual action.
func NewManualAdapter(p domain.Platform) *ManualAdapter {
	return &ManualAdapter{platform: p}
}

// Platform implements Adapter.
func (a *ManualAdapter) Platform() domain.Platform {
	return a.platform
}

// Delist implements Adapter; it never acts, it reports Unsupported.
func (a *ManualAdapter) Delist(_ context.Context, _ string) error {
	return &Error{
		Kind:     KindUnsupported,
		Platform: a.platform,
		Err:      ErrManualActionRequired,
	}
}
