package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector; gameplay uses X/Y, Z is a visual offset
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a float64 2D vector for planar geometry and sprite sizes
type Vec2 struct {
	X, Y float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

// V3Normalize returns the unit vector, zero-safe
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3IsZero reports an exactly zero vector
func V3IsZero(v Vec3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// V3XY drops the Z component
func V3XY(v Vec3) Vec2 {
	return Vec2{v.X, v.Y}
}

// V3Cell truncates X/Y toward zero into integer grid coordinates
func V3Cell(v Vec3) (x, y int) {
	return int(v.X), int(v.Y)
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Cross returns the z component of the 2D cross product a × b
func Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// FromAngle returns the unit vector for an angle in radians
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Angle returns atan2(y, x) of the vector
func Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}
