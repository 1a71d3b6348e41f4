// Package geom holds the float64 vector and rotation math the behaviors need.
package geom

import "math"

// Vec3 is a float64 3D vector. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero    = Vec3{}
	Up      = Vec3{0, 1, 0}
	Forward = Vec3{0, 0, 1}
	Right   = Vec3{1, 0, 0}
)

func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) LenSq() float64 { return a.Dot(a) }

func (a Vec3) Len() float64 { return math.Sqrt(a.LenSq()) }

// Normalize returns the unit vector, or Zero for a zero-length input.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Zero
	}
	return a.Scale(1 / l)
}

func Distance(a, b Vec3) float64 { return a.Sub(b).Len() }

// Angle returns the unsigned angle between a and b in degrees.
func Angle(a, b Vec3) float64 {
	denom := math.Sqrt(a.LenSq() * b.LenSq())
	if denom < 1e-15 {
		return 0
	}
	c := a.Dot(b) / denom
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c) * 180 / math.Pi
}

// MoveTowards steps current toward target by at most maxDelta without overshooting.
func MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	d := target.Sub(current)
	dist := d.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(d.Scale(maxDelta / dist))
}
