package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dispenser/flavor"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'p': {Type: IntentPause},
			'm': {Type: IntentToggleMute},
		},
	}
	for i, f := range flavor.All() {
		kt.Runes[rune('1'+i)] = Intent{Type: IntentToggleHold, Flavor: f}
	}
	return kt
}

// Resolve maps a key event to an intent
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	return kt.ResolveKey(ev.Key(), ev.Rune())
}

// ResolveKey maps a key and, for KeyRune, its rune to an intent
func (kt *KeyTable) ResolveKey(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
