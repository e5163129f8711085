package dispatch

// Policy controls simulate/confirm semantics for one dispatch. It is
// an explicit value passed into every Dispatch call; there is no
// process-wide mode flag.
type Policy struct {
	// Simulate suppresses all adapter calls. State and audit are still
	// written so simulated runs stay fully traceable.
	Simulate bool

	// Confirm is invoked once per real (non-simulated) dispatch before
	// any adapter call. Returning false skips every target with
	// SKIPPED_NO_CONFIRM; the sale itself is still recorded. A nil
	// Confirm means confirmed.
	Confirm func() bool
}

// SimulatePolicy returns the safe default: record everything, touch
// nothing.
func SimulatePolicy() Policy {
	return Policy{Simulate: true}
}

// AutoConfirmPolicy returns a real-mode policy for non-interactive
// transports (webhook, queue) where confirmation comes from config.
func AutoConfirmPolicy() Policy {
	return Policy{Confirm: func() bool { return true }}
}

func (p Policy) confirmed() bool {
	if p.Confirm == nil {
		return true
	}
	return p.Confirm()
}
