package input

import (
	"github.com/lixenwraith/dispenser/flavor"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentPause       // p
	IntentToggleMute  // m
	IntentToggleHold  // 1,2,3: press or release a flavor button
	IntentPointerDown // Mouse button pressed over a flavor button
	IntentPointerUp   // Mouse button released
)

// Intent is a resolved input action
type Intent struct {
	Type   IntentType
	Flavor flavor.Flavor
}
