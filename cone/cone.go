// Package cone holds the container the machine fills
package cone

import (
	"github.com/lixenwraith/dispenser/curve"
)

// Cone is the single container being filled
// Filled is set once on natural completion and never reset
type Cone struct {
	filled bool
	path   curve.Provider
}

// New creates an empty cone whose fill path is p
func New(p curve.Provider) *Cone {
	return &Cone{path: p}
}

// Filled reports whether a pour has completed into this cone
func (c *Cone) Filled() bool {
	return c.filled
}

// MarkFilled sets the filled flag; repeated calls have no effect
func (c *Cone) MarkFilled() {
	c.filled = true
}

// Curve returns the path pieces are placed along
func (c *Cone) Curve() curve.Provider {
	return c.path
}
