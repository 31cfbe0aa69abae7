// Package gate implements the one-shot confirmation latch required before
// elevated or admin-level commands execute. The first request arms the
// gate; repeating the same request consumes it and lets the command
// through. The latch persists until confirmed or the process restarts,
// even across unrelated action selections.
package gate

import "sync"

type State int

const (
	Idle State = iota
	PendingConfirmation
)

type Gate struct {
	mu    sync.Mutex
	state State
}

func New() *Gate {
	return &Gate{}
}

// Confirm advances the latch. It returns false on the arming call and true
// on the confirming call, resetting to Idle in the same step.
func (g *Gate) Confirm() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Idle {
		g.state = PendingConfirmation
		return false
	}
	g.state = Idle
	return true
}

// Pending reports whether the gate is armed and waiting for a repeat.
func (g *Gate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state == PendingConfirmation
}

// Reset disarms the gate without consuming it.
func (g *Gate) Reset() {
	g.mu.Lock()
	g.state = Idle
	g.mu.Unlock()
}
