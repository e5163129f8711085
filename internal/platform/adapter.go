// Package platform defines the marketplace action adapter contract and
// its implementations. An adapter performs exactly one operation on the
// dispatch core's behalf: attempt to delist an item. Adapters never
// retry; retry policy belongs to the caller.
package platform

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/resellops/resell-sync/pkg/types"
)

// ErrorKind classifies adapter failures for the dispatch core.
type ErrorKind string

// Error kinds the core distinguishes.
const (
	// KindAuthFailure means credentials were rejected.
	KindAuthFailure ErrorKind = "auth_failure"
	// KindItemNotFound means there is nothing left to delist. The core
	// treats this as success-equivalent.
	KindItemNotFound ErrorKind = "item_not_found"
	// KindTransientFailure covers network errors and timeouts; the
	// caller may retry the whole event.
	KindTransientFailure ErrorKind = "transient_failure"
	// KindUnsupported means the platform has no automated delist
	// action; an operator must act manually.
	KindUnsupported ErrorKind = "unsupported"
)

// Error is an adapter failure with a classified kind.
type Error struct {
	Kind     ErrorKind
	Platform domain.Platform
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Platform, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Platform, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classified kind of err, or KindTransientFailure
// for unclassified errors (the safe default: eligible for retry).
func KindOf(err error) ErrorKind {
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr.Kind
	}
	return KindTransientFailure
}

// Adapter performs the delist action for one marketplace.
type Adapter interface {
	// Platform identifies which marketplace this adapter acts on.
	Platform() domain.Platform
	// Delist removes or ends the listing for itemID. A nil return
	// means the listing is gone. Failures are *Error values.
	Delist(ctx context.Context, itemID string) error
}
