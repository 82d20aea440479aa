package dispense

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/dispenser/flavor"
)

// State is the controller's lifecycle state
type State int

const (
	StateIdle State = iota
	StateActive
	StateCompleting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCompleting:
		return "completing"
	default:
		return "unknown"
	}
}

// Session is one pour of a single flavor into a single cone
// Values returned by the controller are snapshots
type Session struct {
	ID        uuid.UUID
	Flavor    flavor.Flavor
	Progress  float64
	NextSpawn time.Duration // Clock time of the next allowed spawn
	Spawned   int
	Active    bool
}
