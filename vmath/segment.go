package vmath

import "math"

// SegmentEpsilon is the determinant magnitude below which segments are treated as parallel
const SegmentEpsilon = 1e-9

// Segment is a closed line segment from A to B
type Segment struct {
	A, B Vec2
}

// SegmentIntersect returns the intersection point of two segments
// Uses the determinant form: p = a1 + t(a2-a1), q = b1 + u(b2-b1), hit when t,u ∈ [0,1]
// Parallel and collinear segments never intersect
func SegmentIntersect(s1, s2 Segment) (Vec2, bool) {
	x1, y1 := s1.A.X, s1.A.Y
	x2, y2 := s1.B.X, s1.B.Y
	x3, y3 := s2.A.X, s2.A.Y
	x4, y4 := s2.B.X, s2.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < SegmentEpsilon {
		return Vec2{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}
	return Vec2{x1 + t*(x2-x1), y1 + t*(y2-y1)}, true
}

// SweepSegment returns the segment from origin extending length along angle
func SweepSegment(origin Vec2, angle, length float64) Segment {
	return Segment{A: origin, B: V2Add(origin, V2Scale(FromAngle(angle), length))}
}

// EdgeSegment returns a segment centered on center, perpendicular to angle, spanning ±halfWidth
// Approximates a circular silhouette seen edge-on from the angle's direction
func EdgeSegment(center Vec2, angle, halfWidth float64) Segment {
	s, c := math.Sincos(angle)
	return Segment{
		A: Vec2{center.X - s*halfWidth, center.Y + c*halfWidth},
		B: Vec2{center.X + s*halfWidth, center.Y - c*halfWidth},
	}
}
