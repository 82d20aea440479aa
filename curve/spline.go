package curve

import (
	"math"

	"github.com/lixenwraith/dispenser/vmath"
)

// Spline is a uniform Catmull-Rom spline through its control points
// t maps uniformly onto segments; there is no arc-length reparameterization
type Spline struct {
	points []vmath.Vec3F
	closed bool
}

// NewSpline builds an open spline through points
func NewSpline(points []vmath.Vec3F) (*Spline, error) {
	return newSpline(points, false)
}

// NewClosedSpline builds a loop; t=1 returns to the first point
func NewClosedSpline(points []vmath.Vec3F) (*Spline, error) {
	return newSpline(points, true)
}

func newSpline(points []vmath.Vec3F, closed bool) (*Spline, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	pts := make([]vmath.Vec3F, len(points))
	copy(pts, points)
	return &Spline{points: pts, closed: closed}, nil
}

// Points returns a copy of the control points
func (s *Spline) Points() []vmath.Vec3F {
	out := make([]vmath.Vec3F, len(s.points))
	copy(out, s.points)
	return out
}

// Closed reports whether the spline loops
func (s *Spline) Closed() bool {
	return s.closed
}

func (s *Spline) segmentCount() int {
	if s.closed {
		return len(s.points)
	}
	return len(s.points) - 1
}

// locate maps t to a segment index and local parameter u in [0,1]
func (s *Spline) locate(t float64) (int, float64) {
	t = vmath.Clamp01(t)
	n := s.segmentCount()
	f := t * float64(n)
	seg := int(math.Floor(f))
	if seg >= n {
		seg = n - 1
	}
	return seg, f - float64(seg)
}

// point returns control point i with end handling: wrap when closed, clamp otherwise
func (s *Spline) point(i int) vmath.Vec3F {
	n := len(s.points)
	if s.closed {
		return s.points[((i%n)+n)%n]
	}
	if i < 0 {
		// Mirror the first point to extend the tangent naturally
		return vmath.V3FSub(vmath.V3FScale(s.points[0], 2), s.points[1])
	}
	if i >= n {
		return vmath.V3FSub(vmath.V3FScale(s.points[n-1], 2), s.points[n-2])
	}
	return s.points[i]
}

func (s *Spline) controls(seg int) (p0, p1, p2, p3 vmath.Vec3F) {
	return s.point(seg - 1), s.point(seg), s.point(seg + 1), s.point(seg + 2)
}

// Position evaluates the spline at t, clamped to [0,1]
func (s *Spline) Position(t float64) vmath.Vec3F {
	seg, u := s.locate(t)
	p0, p1, p2, p3 := s.controls(seg)

	u2 := u * u
	u3 := u2 * u
	// 0.5 * (2p1 + (-p0+p2)u + (2p0-5p1+4p2-p3)u² + (-p0+3p1-3p2+p3)u³)
	c0 := vmath.V3FScale(p1, 2)
	c1 := vmath.V3FScale(vmath.V3FSub(p2, p0), u)
	c2 := vmath.V3FScale(vmath.V3FAdd(
		vmath.V3FSub(vmath.V3FScale(p0, 2), vmath.V3FScale(p1, 5)),
		vmath.V3FSub(vmath.V3FScale(p2, 4), p3),
	), u2)
	c3 := vmath.V3FScale(vmath.V3FAdd(
		vmath.V3FSub(vmath.V3FScale(p1, 3), p0),
		vmath.V3FSub(p3, vmath.V3FScale(p2, 3)),
	), u3)

	return vmath.V3FScale(vmath.V3FAdd(vmath.V3FAdd(c0, c1), vmath.V3FAdd(c2, c3)), 0.5)
}

// Tangent evaluates the derivative with respect to t, clamped to [0,1]
func (s *Spline) Tangent(t float64) vmath.Vec3F {
	seg, u := s.locate(t)
	p0, p1, p2, p3 := s.controls(seg)

	u2 := u * u
	// 0.5 * ((-p0+p2) + 2(2p0-5p1+4p2-p3)u + 3(-p0+3p1-3p2+p3)u²)
	d1 := vmath.V3FSub(p2, p0)
	d2 := vmath.V3FScale(vmath.V3FAdd(
		vmath.V3FSub(vmath.V3FScale(p0, 2), vmath.V3FScale(p1, 5)),
		vmath.V3FSub(vmath.V3FScale(p2, 4), p3),
	), 2*u)
	d3 := vmath.V3FScale(vmath.V3FAdd(
		vmath.V3FSub(vmath.V3FScale(p1, 3), p0),
		vmath.V3FSub(p3, vmath.V3FScale(p2, 3)),
	), 3*u2)

	// d/dt = d/du * segmentCount
	return vmath.V3FScale(vmath.V3FAdd(d1, vmath.V3FAdd(d2, d3)), 0.5*float64(s.segmentCount()))
}

// Sample returns n evenly spaced positions from t=0 to t=1 inclusive
func Sample(p Provider, n int) []vmath.Vec3F {
	if n < 2 {
		n = 2
	}
	out := make([]vmath.Vec3F, n)
	for i := range out {
		out[i] = p.Position(float64(i) / float64(n-1))
	}
	return out
}
