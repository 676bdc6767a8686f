package aadraw

import "math"

// Dot returns the dot product of two vectors.
func Dot(v0, v1 Point) float64 {
	return v0.X*v1.X + v0.Y*v1.Y
}

// Line is an infinite line given by the coefficients of A*x + B*y + C = 0.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line passing through p0 and p1.
// The coefficients come from the cross product of the homogeneous points, so
// the normal (A, B) has the length of the segment p0-p1.
func LineThrough(p0, p1 Point) Line {
	return Line{
		A: p1.Y - p0.Y,
		B: p0.X - p1.X,
		C: p1.X*p0.Y - p0.X*p1.Y,
	}
}

// DistanceToLine returns the distance from p to the line l. If signed is
// true the sign tells on which side of the line p lies; otherwise the
// absolute distance is returned.
//
// A degenerate line (A = B = 0) has no direction; the distance is reported
// as 0.
func DistanceToLine(p Point, l Line, signed bool) float64 {
	n := math.Hypot(l.A, l.B)
	if n == 0 {
		return 0
	}
	d := (l.A*p.X + l.B*p.Y + l.C) / n
	if signed {
		return d
	}
	return math.Abs(d)
}

// Segment is a line segment between two points.
type Segment struct {
	P0, P1 Point
}

// Seg is a convenience function to create a Segment.
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{P0: Pt(x0, y0), P1: Pt(x1, y1)}
}

// Transpose returns the segment with the coordinates of both endpoints
// swapped.
func (s Segment) Transpose() Segment {
	return Segment{P0: s.P0.Transpose(), P1: s.P1.Transpose()}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P0.Distance(s.P1)
}

// DistanceToSegment returns the distance from p to the closest point of s.
//
// When the projection of p onto the segment's line falls before P0 the
// distance to P0 is returned, at or after P1 the distance to P1, and
// otherwise the perpendicular distance to the line. A zero-length segment
// always takes the P1 branch.
func DistanceToSegment(p Point, s Segment) float64 {
	ab := s.P1.Sub(s.P0)
	if Dot(ab, p.Sub(s.P0)) < 0 {
		return p.Distance(s.P0)
	}
	if Dot(ab, p.Sub(s.P1)) >= 0 {
		return p.Distance(s.P1)
	}
	return DistanceToLine(p, LineThrough(s.P0, s.P1), false)
}
