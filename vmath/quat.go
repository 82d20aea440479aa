package vmath

import "math"

// Quat is a unit rotation quaternion
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdentity is the zero rotation
var QuatIdentity = Quat{W: 1}

// QuatFromEuler builds a rotation from euler angles in degrees
// Application order is Z, then X, then Y (roll, pitch, yaw)
func QuatFromEuler(pitch, yaw, roll float64) Quat {
	hp := Deg2Rad(pitch) * 0.5
	hy := Deg2Rad(yaw) * 0.5
	hr := Deg2Rad(roll) * 0.5

	qx := Quat{W: math.Cos(hp), X: math.Sin(hp)}
	qy := Quat{W: math.Cos(hy), Y: math.Sin(hy)}
	qz := Quat{W: math.Cos(hr), Z: math.Sin(hr)}

	return QuatMul(qy, QuatMul(qx, qz))
}

// QuatAxisAngle builds a rotation of deg degrees around axis
func QuatAxisAngle(axis Vec3F, deg float64) Quat {
	axis = V3FNormalize(axis)
	h := Deg2Rad(deg) * 0.5
	s := math.Sin(h)
	return Quat{W: math.Cos(h), X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s}
}

// QuatMul composes rotations: b is applied first, then a
func QuatMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QuatNormalize returns q scaled to unit length, identity for zero input
func QuatNormalize(q Quat) Quat {
	mag := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if mag == 0 {
		return QuatIdentity
	}
	inv := 1.0 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QuatRotate applies q to v
func QuatRotate(q Quat, v Vec3F) Vec3F {
	u := Vec3F{q.X, q.Y, q.Z}
	// v' = v + 2w(u×v) + 2u×(u×v)
	uv := V3FCross(u, v)
	uuv := V3FCross(u, uv)
	return V3FAdd(v, V3FAdd(V3FScale(uv, 2*q.W), V3FScale(uuv, 2)))
}

// QuatLookRotation returns the rotation mapping +Z onto forward with Y as close to up as possible
// Zero forward yields identity
func QuatLookRotation(forward, up Vec3F) Quat {
	f := V3FNormalize(forward)
	if V3FMagSq(f) == 0 {
		return QuatIdentity
	}
	r := V3FCross(up, f)
	if V3FMagSq(r) < 1e-12 {
		// forward parallel to up, pick any perpendicular right axis
		r = V3FCross(V3FRight, f)
		if V3FMagSq(r) < 1e-12 {
			r = V3FCross(V3FForward, f)
		}
	}
	r = V3FNormalize(r)
	u := V3FCross(f, r)

	// Rotation matrix columns r, u, f
	m00, m01, m02 := r.X, u.X, f.X
	m10, m11, m12 := r.Y, u.Y, f.Y
	m20, m21, m22 := r.Z, u.Z, f.Z

	var q Quat
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = Quat{W: 0.25 * s, X: (m21 - m12) / s, Y: (m02 - m20) / s, Z: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = Quat{W: (m21 - m12) / s, X: 0.25 * s, Y: (m01 + m10) / s, Z: (m02 + m20) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = Quat{W: (m02 - m20) / s, X: (m01 + m10) / s, Y: 0.25 * s, Z: (m12 + m21) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = Quat{W: (m10 - m01) / s, X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: 0.25 * s}
	}
	return QuatNormalize(q)
}

// QuatDot returns the 4D dot product
func QuatDot(a, b Quat) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// QuatSlerp spherically interpolates along the shortest arc, t clamped to [0,1]
func QuatSlerp(a, b Quat, t float64) Quat {
	t = Clamp01(t)
	dot := QuatDot(a, b)
	if dot < 0 {
		b = Quat{-b.W, -b.X, -b.Y, -b.Z}
		dot = -dot
	}

	// Nearly parallel: fall back to normalized lerp
	if dot > 0.9995 {
		return QuatNormalize(Quat{
			W: a.W + (b.W-a.W)*t,
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
			Z: a.Z + (b.Z-a.Z)*t,
		})
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Quat{
		W: a.W*wa + b.W*wb,
		X: a.X*wa + b.X*wb,
		Y: a.Y*wa + b.Y*wb,
		Z: a.Z*wa + b.Z*wb,
	}
}

// QuatAngle returns the angle in degrees between two rotations
func QuatAngle(a, b Quat) float64 {
	dot := math.Abs(QuatDot(a, b))
	if dot > 1 {
		dot = 1
	}
	return Rad2Deg(2 * math.Acos(dot))
}

// Pose is a world position with orientation
type Pose struct {
	Position Vec3F
	Rotation Quat
}
