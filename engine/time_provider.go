package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings to the loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
// Used to measure frame deltas; never paused
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for tests
// It serves both as a TimeProvider and as a dispense.Clock
type ManualClock struct {
	mu      sync.RWMutex
	epoch   time.Time
	elapsed time.Duration
}

// NewManualClock creates a manual clock anchored at epoch
func NewManualClock(epoch time.Time) *ManualClock {
	return &ManualClock{epoch: epoch}
}

// Now returns epoch plus the elapsed time
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch.Add(m.elapsed)
}

// Elapsed returns the time advanced so far
func (m *ManualClock) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.elapsed
}

// Set jumps the clock to d past the epoch
func (m *ManualClock) Set(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed = d
}

// Advance moves the clock forward by d
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed += d
}
