package dispatch

import (
	domain "github.com/resellops/resell-sync/pkg/types"
)

// Outcome is the per-target result of one cleanup attempt.
type Outcome string

// Outcome constants.
const (
	// OutcomeSimulated means policy.Simulate was set; no adapter ran.
	OutcomeSimulated Outcome = "SIMULATED"
	// OutcomeSucceeded means the listing is gone (including the
	// "already gone" case, which adapters report as success-equivalent).
	OutcomeSucceeded Outcome = "SUCCEEDED"
	// OutcomeFailed means the adapter attempt failed; the caller
	// decides whether to retry the event.
	OutcomeFailed Outcome = "FAILED"
	// OutcomeSkippedNoConfirm means the confirmation callback declined;
	// the sale was still recorded.
	OutcomeSkippedNoConfirm Outcome = "SKIPPED_NO_CONFIRM"
	// OutcomeManualRequired means the platform has no automated delist
	// action; an operator must remove the listing by hand.
	OutcomeManualRequired Outcome = "MANUAL_REQUIRED"
)

// Result is what Dispatch returns to its transport caller.
//
// Accepted is true whenever the event made it through validation and
// the state write, regardless of per-target failures: partial cleanup
// is a reportable business outcome, not a dispatch failure.
type Result struct {
	Accepted bool                       `json:"accepted"`
	Mode     domain.Mode                `json:"mode"`
	Targets  []domain.Platform          `json:"targets"`
	Outcomes map[domain.Platform]Outcome `json:"outcomes"`

	// Errors holds the failure detail per target that did not succeed.
	Errors map[domain.Platform]string `json:"errors,omitempty"`
}

// Failed reports whether any target ended in OutcomeFailed.
func (r *Result) Failed() bool {
	for _, o := range r.Outcomes {
		if o == OutcomeFailed {
			return true
		}
	}
	return false
}
