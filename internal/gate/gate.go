// Package gate enforces a minimum interval between outbound calls to the
// text-generation provider. A Gate is an explicit object owned by its caller,
// so each client (and each test) gets an isolated cooldown window.
package gate

import (
	"sync"
	"time"
)

// DefaultCooldown is the minimum spacing between two permitted calls.
const DefaultCooldown = 2 * time.Second

// Gate permits at most one call per cooldown window.
// It is safe for concurrent use.
type Gate struct {
	cooldown time.Duration

	mu   sync.Mutex
	last time.Time
}

// New creates a Gate with the given cooldown. A negative cooldown is treated
// as zero, which permits every call that does not move backwards in time.
func New(cooldown time.Duration) *Gate {
	if cooldown < 0 {
		cooldown = 0
	}
	return &Gate{cooldown: cooldown}
}

// TryAcquire reports whether a call may be made at now. On success now is
// recorded as the last call time; on rejection the state is left untouched.
// The first acquire on a fresh Gate always succeeds.
func (g *Gate) TryAcquire(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.last.IsZero() && now.Sub(g.last) < g.cooldown {
		return false
	}
	// A clock that stepped backwards must not rewind the window.
	if !g.last.IsZero() && now.Before(g.last) {
		return false
	}

	g.last = now
	return true
}

// LastAcquired returns the time of the most recent permitted call, or the
// zero time if nothing has been permitted yet.
func (g *Gate) LastAcquired() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Cooldown returns the configured window.
func (g *Gate) Cooldown() time.Duration {
	return g.cooldown
}
