package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock is frame-driven game time with pause duration tracking
// Game time moves only through Advance, so a paused loop freezes the pour exactly
type PausableClock struct {
	mu sync.RWMutex

	elapsed time.Duration // Game time accumulated from frame deltas

	// Pause state, measured in real time
	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration

	realTimeProvider TimeProvider
}

// NewPausableClock creates a running clock at zero
// A nil provider uses the monotonic system clock
func NewPausableClock(wall TimeProvider) *PausableClock {
	if wall == nil {
		wall = NewMonotonicTimeProvider()
	}
	return &PausableClock{realTimeProvider: wall}
}

// Elapsed returns game time, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.elapsed
}

// Advance adds one frame's delta; returns false and ignores dt while paused
func (pc *PausableClock) Advance(dt time.Duration) bool {
	if pc.isPaused.Load() || dt <= 0 {
		return false
	}
	pc.mu.Lock()
	pc.elapsed += dt
	pc.mu.Unlock()
	return true
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.realTimeProvider.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.realTimeProvider.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// TogglePause flips the pause state and returns the new state
func (pc *PausableClock) TogglePause() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.realTimeProvider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
