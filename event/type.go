package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is reserved, never emitted
	EventNone EventType = iota

	// EventStickActivate bends a flavor stick down
	// Trigger: Controller.Begin accepted
	// Consumer: StickAnimator, SoundManager | Payload: *StickPayload
	EventStickActivate

	// EventStickDeactivate returns a flavor stick to rest
	// Trigger: Controller.End
	// Consumer: StickAnimator, SoundManager | Payload: *StickPayload
	EventStickDeactivate

	// EventSessionBegin marks the start of a pour
	// Trigger: Controller.Begin accepted
	// Consumer: SoundManager, logging | Payload: *SessionPayload
	EventSessionBegin

	// EventSessionEnd marks the end of a pour, completed or cancelled
	// Trigger: Controller.End
	// Consumer: SoundManager, logging | Payload: *SessionPayload
	EventSessionEnd

	// EventSpawnPiece requests one cosmetic piece
	// Trigger: Controller.Tick when the spawn deadline passes
	// Consumer: PieceAnimator | Payload: *SpawnPayload
	EventSpawnPiece

	// EventConeFilled signals the cone reached full
	// Trigger: Controller.Tick on natural completion
	// Consumer: SoundManager, status line | Payload: *SessionPayload
	EventConeFilled
)

// GameEvent is a single dispatched event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
