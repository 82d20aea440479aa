package flavor

import (
	"github.com/gdamore/tcell/v2"
)

// Material is the tint applied to a spawned piece and its flavor stick
type Material struct {
	Name  string
	Color tcell.Color
	Glyph rune
}

// Style returns the tcell style for drawing with this material
func (m Material) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(m.Color)
}

// Registry maps flavors to materials
// Used only for tinting; the dispenser never consults it
type Registry struct {
	materials map[Flavor]Material
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{materials: make(map[Flavor]Material)}
}

// DefaultRegistry returns the stock pink, brown and green tints
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Strawberry, Material{Name: "strawberry", Color: tcell.NewRGBColor(255, 140, 180), Glyph: '●'})
	r.Register(Chocolate, Material{Name: "chocolate", Color: tcell.NewRGBColor(120, 70, 40), Glyph: '●'})
	r.Register(Pistachio, Material{Name: "pistachio", Color: tcell.NewRGBColor(160, 200, 120), Glyph: '●'})
	return r
}

// Register sets the material for f, replacing any previous one
func (r *Registry) Register(f Flavor, m Material) {
	r.materials[f] = m
}

// Lookup returns the material for f
func (r *Registry) Lookup(f Flavor) (Material, bool) {
	m, ok := r.materials[f]
	return m, ok
}
