package event

var typeToName = map[EventType]string{
	EventNone:            "EventNone",
	EventStickActivate:   "EventStickActivate",
	EventStickDeactivate: "EventStickDeactivate",
	EventSessionBegin:    "EventSessionBegin",
	EventSessionEnd:      "EventSessionEnd",
	EventSpawnPiece:      "EventSpawnPiece",
	EventConeFilled:      "EventConeFilled",
}

// String returns the registered name for an EventType
func (et EventType) String() string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "EventUnknown"
}
