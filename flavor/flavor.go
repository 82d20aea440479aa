package flavor

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Flavor identifies one of the machine's ice cream types
type Flavor int

const (
	None Flavor = iota
	Strawberry
	Chocolate
	Pistachio
)

var names = [...]string{
	None:       "none",
	Strawberry: "strawberry",
	Chocolate:  "chocolate",
	Pistachio:  "pistachio",
}

// All returns the dispensable flavors in button order
func All() []Flavor {
	return []Flavor{Strawberry, Chocolate, Pistachio}
}

func (f Flavor) String() string {
	if f < None || int(f) >= len(names) {
		return "unknown"
	}
	return names[f]
}

// Label returns the display name used on buttons
func (f Flavor) Label() string {
	// Casers carry state, one per call
	return cases.Title(language.English).String(f.String())
}

// Valid reports whether f can be dispensed
func (f Flavor) Valid() bool {
	return f > None && int(f) < len(names)
}

// Parse resolves a case-insensitive flavor name
func Parse(name string) (Flavor, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Flavor(i), true
		}
	}
	return None, false
}
