package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/vmath"
)

// StickPayload names the flavor stick to move
type StickPayload struct {
	Flavor flavor.Flavor
}

// SessionPayload describes a pour session at a lifecycle edge
type SessionPayload struct {
	ID        uuid.UUID
	Flavor    flavor.Flavor
	Progress  float64
	Spawned   int
	Completed bool // Natural completion, false on cancellation
}

// SpawnPayload is one piece request
// Origin is the nozzle pose at emission, Target the placement on the cone curve
type SpawnPayload struct {
	SessionID uuid.UUID
	Flavor    flavor.Flavor
	Origin    vmath.Pose
	Target    vmath.Pose
	Index     int // Zero-based spawn count within the session
}
