package vmath

import "math"

// Clamp01 limits t to [0,1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp interpolates scalars, t clamped to [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// Deg2Rad converts degrees to radians
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
