// Package gate serializes classification requests against the inference
// service: at most one in flight per process, with a fixed cooldown between
// accepted requests.
package gate

import (
	"errors"
	"sync"
	"time"
)

// DefaultCooldown is the minimum gap between accepted requests.
const DefaultCooldown = 5 * time.Second

var (
	// ErrCooldown means the previous request was accepted too recently.
	ErrCooldown = errors.New("cooldown active")
	// ErrBusy means another request is still in flight.
	ErrBusy = errors.New("classification in progress")
)

// RateGate is a single-slot admission gate. Rejected callers are not queued;
// they retry on their own.
type RateGate struct {
	mu       sync.Mutex
	busy     bool
	last     time.Time
	cooldown time.Duration
	now      func() time.Time
}

func New(cooldown time.Duration) *RateGate {
	return NewWithClock(cooldown, time.Now)
}

// NewWithClock injects the clock, for tests.
func NewWithClock(cooldown time.Duration, now func() time.Time) *RateGate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &RateGate{cooldown: cooldown, now: now}
}

// TryAcquire admits the caller or rejects it with a wait hint. On ErrCooldown
// the hint is the remaining wait; on ErrBusy it is the full cooldown. The
// caller must Release after an admitted request, on every exit path.
func (g *RateGate) TryAcquire() (time.Duration, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if !g.last.IsZero() {
		if elapsed := now.Sub(g.last); elapsed < g.cooldown {
			return g.cooldown - elapsed, ErrCooldown
		}
	}
	if g.busy {
		return g.cooldown, ErrBusy
	}
	g.busy = true
	g.last = now
	return 0, nil
}

// Release clears the busy slot. Safe to call when not held. A stuck slot
// would wedge the endpoint permanently, so callers defer this immediately
// after a successful TryAcquire.
func (g *RateGate) Release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// Cooldown returns the configured cooldown window.
func (g *RateGate) Cooldown() time.Duration {
	return g.cooldown
}
