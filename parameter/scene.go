package parameter

import "time"

// Loop timing
const (
	// FrameRate is the target frames per second of the loop
	FrameRate = 60

	// FrameUpdateInterval is the time between frames
	FrameUpdateInterval = time.Second / FrameRate

	// MaxFrameDelta clamps dt after stalls so a hitch does not jump the pour
	MaxFrameDelta = 100 * time.Millisecond
)

// Scene layout in world units
const (
	// ConeRadius is the rim radius of the cone the spiral starts on
	ConeRadius = 1.6

	// ConeTipRadius is the radius the spiral narrows to at the top of the swirl
	ConeTipRadius = 0.3

	// ConeRimHeight is the world height of the cone rim
	ConeRimHeight = 0.0

	// ConeDepth is the distance from the rim down to the cone's point
	ConeDepth = 2.2

	// SwirlHeight is the height of the finished swirl above the rim
	SwirlHeight = 1.8

	// SwirlTurns is the number of spiral turns from rim to tip
	SwirlTurns = 3.5

	// SwirlSamples is spiral control points per turn
	SwirlSamples = 16

	// MachineHeight is the fixed height the dispenser base travels at
	MachineHeight = 3.4

	// MachineHomeX is the rest position of the dispenser along X
	MachineHomeX = 0.0

	// MachineHomeZ is the rest position of the dispenser along Z
	MachineHomeZ = -2.5
)

// Render view volume in world units, shared by the side and top projections
const (
	ViewMinX = -3.0
	ViewMaxX = 3.0
	ViewMinY = -2.4
	ViewMaxY = 4.2
	ViewMinZ = -3.2
	ViewMaxZ = 2.2

	// CellAspect is the height to width ratio of a terminal cell
	CellAspect = 2.0
)

// Logging
const (
	// LogDir is the debug log directory relative to the working directory
	LogDir = "logs"

	// LogFileName is the debug log file
	LogFileName = "dispenser.log"
)
