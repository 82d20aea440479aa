// Package tween interpolates cosmetic values over fixed durations
package tween

import (
	"math"
	"time"

	"github.com/lixenwraith/dispenser/vmath"
)

// Ease remaps normalized time in [0,1]
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

func InOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

// Tween moves a value from a start to an end over a duration
type Tween[T any] struct {
	from     T
	to       T
	current  T
	duration time.Duration
	elapsed  time.Duration
	ease     Ease
	lerp     func(a, b T, t float64) T
}

func newTween[T any](from, to T, d time.Duration, ease Ease, lerp func(a, b T, t float64) T) *Tween[T] {
	if ease == nil {
		ease = OutQuad
	}
	tw := &Tween[T]{from: from, to: to, current: from, duration: d, ease: ease, lerp: lerp}
	if d <= 0 {
		tw.current = to
	}
	return tw
}

// NewFloat tweens a scalar
func NewFloat(from, to float64, d time.Duration, ease Ease) *Tween[float64] {
	return newTween(from, to, d, ease, vmath.Lerp)
}

// NewVec3 tweens a position
func NewVec3(from, to vmath.Vec3F, d time.Duration, ease Ease) *Tween[vmath.Vec3F] {
	return newTween(from, to, d, ease, vmath.V3FLerp)
}

// NewQuat tweens a rotation along the shortest arc
func NewQuat(from, to vmath.Quat, d time.Duration, ease Ease) *Tween[vmath.Quat] {
	return newTween(from, to, d, ease, vmath.QuatSlerp)
}

// Step advances by dt and returns the new value
func (tw *Tween[T]) Step(dt time.Duration) T {
	if tw.Done() {
		return tw.current
	}
	tw.elapsed += dt
	if tw.elapsed >= tw.duration {
		tw.elapsed = tw.duration
		tw.current = tw.to
		return tw.current
	}
	f := float64(tw.elapsed) / float64(tw.duration)
	tw.current = tw.lerp(tw.from, tw.to, tw.ease(f))
	return tw.current
}

// Value returns the current value
func (tw *Tween[T]) Value() T { return tw.current }

// Target returns the end value
func (tw *Tween[T]) Target() T { return tw.to }

// Done reports whether the end value was reached
func (tw *Tween[T]) Done() bool { return tw.elapsed >= tw.duration }

// Retarget restarts toward to from the current value
func (tw *Tween[T]) Retarget(to T, d time.Duration) {
	tw.from = tw.current
	tw.to = to
	tw.duration = d
	tw.elapsed = 0
	if d <= 0 {
		tw.current = to
	}
}
