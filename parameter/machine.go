package parameter

import (
	"time"
)

// Dispenser motion
const (
	// OrbitSpeed is progress gained per second while pouring; 0.05 fills a cone in 20s
	OrbitSpeed = 0.05

	// PourRate is pieces spawned per second
	PourRate = 50.0

	// Smoothing is the exponential follow rate k in lerp(pos, target, k*dt)
	Smoothing = 5.0

	// MaxSpawnsPerTick bounds catch-up emission after a long frame
	MaxSpawnsPerTick = 4

	// CompletionEpsilon absorbs float accumulation so progress reaching 1 completes on the expected tick
	CompletionEpsilon = 1e-6
)

// Nozzle placement relative to the dispenser base
const (
	NozzleOffsetX = 0.0
	NozzleOffsetY = -0.6
	NozzleOffsetZ = 0.0
)

// Flavor sticks
const (
	// StickActivationTime is how long a stick takes to bend or return
	StickActivationTime = 250 * time.Millisecond

	// StickAngle is the bend in degrees while a flavor is pressed
	StickAngle = 30.0
)

// Pieces
const (
	// PieceFallDuration is the time a piece takes to fall from the nozzle to the cone
	PieceFallDuration = 1500 * time.Millisecond

	// PieceRotateDuration is the time a piece takes to align with the curve tangent
	PieceRotateDuration = 3 * time.Second

	// PieceSpawnPitch is the initial pitch in degrees of a spawned piece
	PieceSpawnPitch = -90.0

	// MaxPieces caps retained pieces; oldest landed pieces are dropped first
	MaxPieces = 2048
)

// Buttons
const (
	// ButtonPressScale is the scale a held button shrinks to
	ButtonPressScale = 0.9

	// ButtonTweenTime is the press and release scale animation time
	ButtonTweenTime = 200 * time.Millisecond
)
