package scanner

import (
	"sync"
	"time"
)

// DefaultCooldown is the pause after an accepted scan
const DefaultCooldown = 2000 * time.Millisecond

// Gate accepts at most one event per cooldown window
type Gate struct {
	mu       sync.Mutex
	cooldown time.Duration
	now      func() time.Time
	last     time.Time
	armed    bool
}

// NewGate creates a gate; a non-positive cooldown uses DefaultCooldown
func NewGate(cooldown time.Duration, now func() time.Time) *Gate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if now == nil {
		now = time.Now
	}
	return &Gate{cooldown: cooldown, now: now}
}

// Allow reports whether an event may pass and starts a new window if so
func (g *Gate) Allow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.now()
	if g.armed && current.Sub(g.last) < g.cooldown {
		return false
	}
	g.last = current
	g.armed = true
	return true
}

// Reset lets the next event through immediately
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed = false
}

// SetCooldown changes the window length
func (g *Gate) SetCooldown(cooldown time.Duration) {
	if cooldown <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cooldown = cooldown
}

// Cooldown returns the window length
func (g *Gate) Cooldown() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cooldown
}
