package dispense

import (
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/vmath"
)

// nozzleRotation points the nozzle straight down
var nozzleRotation = vmath.QuatFromEuler(90, 0, 0)

// Rig is the moving dispenser base
// It follows its target with damped motion and never snaps
type Rig struct {
	position  vmath.Vec3F
	home      vmath.Vec3F
	target    vmath.Vec3F
	smoothing float64
	nozzle    vmath.Vec3F
}

// NewRig places the rig at home with the given follow rate and nozzle offset
func NewRig(home vmath.Vec3F, smoothing float64, nozzleOffset vmath.Vec3F) *Rig {
	if smoothing <= 0 {
		smoothing = parameter.Smoothing
	}
	return &Rig{
		position:  home,
		home:      home,
		target:    home,
		smoothing: smoothing,
		nozzle:    nozzleOffset,
	}
}

func (r *Rig) Position() vmath.Vec3F { return r.position }
func (r *Rig) Home() vmath.Vec3F     { return r.home }
func (r *Rig) Target() vmath.Vec3F   { return r.target }

// SetTarget changes where the rig is heading
func (r *Rig) SetTarget(v vmath.Vec3F) {
	r.target = v
}

// ReturnHome targets the initial position
func (r *Rig) ReturnHome() {
	r.target = r.home
}

// Step moves toward the target: pos = lerp(pos, target, k*dt)
func (r *Rig) Step(dt float64) {
	r.position = vmath.V3FLerp(r.position, r.target, r.smoothing*dt)
}

// AtRest reports whether the rig is within eps of its target
func (r *Rig) AtRest(eps float64) bool {
	return vmath.V3FNear(r.position, r.target, eps)
}

// Nozzle returns the pose pieces are ejected from
func (r *Rig) Nozzle() vmath.Pose {
	return vmath.Pose{
		Position: vmath.V3FAdd(r.position, r.nozzle),
		Rotation: nozzleRotation,
	}
}
