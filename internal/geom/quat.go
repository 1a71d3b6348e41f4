package geom

import "math"

// Quat is a unit rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

var Identity = Quat{W: 1}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// AxisAngle builds a rotation of deg degrees around axis.
func AxisAngle(axis Vec3, deg float64) Quat {
	a := axis.Normalize()
	half := deg2rad(deg) / 2
	s := math.Sin(half)
	return Quat{a.X * s, a.Y * s, a.Z * s, math.Cos(half)}
}

// Euler builds a rotation from degrees around X, Y and Z, applied Z first,
// then X, then Y.
func Euler(x, y, z float64) Quat {
	return AxisAngle(Up, y).Mul(AxisAngle(Right, x)).Mul(AxisAngle(Forward, z))
}

// Mul composes q then r applied as q*r (r rotates first).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

func (q Quat) Dot(r Quat) float64 { return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W }

func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.Dot(q))
	if l == 0 {
		return Identity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Forward is the +Z axis after rotation.
func (q Quat) Forward() Vec3 { return q.Rotate(Forward) }

// LookRotation returns the rotation whose forward axis points along dir with
// +Y as the up hint. A zero dir yields Identity.
func LookRotation(dir Vec3) Quat {
	f := dir.Normalize()
	if f == Zero {
		return Identity
	}
	r := Up.Cross(f)
	if r.LenSq() < 1e-12 {
		// looking straight up or down
		r = Right
	}
	r = r.Normalize()
	u := f.Cross(r)

	m00, m01, m02 := r.X, u.X, f.X
	m10, m11, m12 := r.Y, u.Y, f.Y
	m20, m21, m22 := r.Z, u.Z, f.Z

	var q Quat
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = Quat{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s, 0.25 / s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = Quat{0.25 * s, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = Quat{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = Quat{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s, (m10 - m01) / s}
	}
	return q.Normalize()
}

// Slerp interpolates from a to b along the shortest arc. t is clamped to [0,1].
func Slerp(a, b Quat, t float64) Quat {
	t = math.Max(0, math.Min(1, t))
	d := a.Dot(b)
	if d < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		d = -d
	}
	if d > 0.9995 {
		return Quat{
			a.X + (b.X-a.X)*t,
			a.Y + (b.Y-a.Y)*t,
			a.Z + (b.Z-a.Z)*t,
			a.W + (b.W-a.W)*t,
		}.Normalize()
	}
	theta0 := math.Acos(d)
	theta := theta0 * t
	sin0 := math.Sin(theta0)
	s0 := math.Cos(theta) - d*math.Sin(theta)/sin0
	s1 := math.Sin(theta) / sin0
	return Quat{
		a.X*s0 + b.X*s1,
		a.Y*s0 + b.Y*s1,
		a.Z*s0 + b.Z*s1,
		a.W*s0 + b.W*s1,
	}.Normalize()
}
