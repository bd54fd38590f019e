package blobposter

import (
	"math"
)

// Point is an x,y pair in scene units
type Point struct {
	X, Y float64
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Line is a set of two Points
type Line struct {
	p1, p2 Point
}

// NewLine returns the segment from p1 to p2.
func NewLine(p1, p2 Point) Line {
	return Line{p1, p2}
}

// Crosses returns true if the other line crosses line.
// Basically, line intersection but looking at end points.
func (l Line) Crosses(other Line) bool {
	return Crosses(l.p1, l.p2, other.p1, other.p2)
}

// Code borrowed from C++ and https://bit.ly/3jyKGah
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// To find orientation of ordered triplet (p, q, r).
// The function returns following values
// 0 --> p, q and r are colinear
// 1 --> Clockwise
// 2 --> Counterclockwise
func orientation(p, q, r Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if val == 0 {
		return 0 // colinear
	}
	if val > 0 {
		return 1 // clockwise
	}
	return 2 // counterclock wise
}

// Crosses returns true if line segment `p1`,  `q1` and `p2`, `q2` crosses.
func Crosses(p1, q1, p2, q2 Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	// colinear and touching
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}
