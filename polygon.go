package blobposter

import "math"

// Polygon is a closed outline. The last point connects back to the first,
// so callers never repeat it.
type Polygon []Point

// Edge returns the i'th edge, wrapping around to the first point.
func (p Polygon) Edge(i int) Line {
	return Line{p[i], p[(i+1)%len(p)]}
}

// SelfIntersections counts pairs of non-adjacent edges that cross.
func (p Polygon) SelfIntersections() int {
	n := len(p)
	if n < 4 {
		return 0
	}
	count := 0
	for i := 0; i < n; i++ {
		ei := p.Edge(i)
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // shares the closing vertex
			}
			if ei.Crosses(p.Edge(j)) {
				count++
			}
		}
	}
	return count
}

// Bounds returns the bounding box of p.
func (p Polygon) Bounds() Bounds {
	var b Bounds
	for _, pt := range p {
		b = b.Extend(pt)
	}
	return b
}

// Bounds is an axis aligned box. The zero value is empty.
type Bounds struct {
	Min, Max Point
	set      bool
}

// Empty reports whether no point was ever added.
func (b Bounds) Empty() bool {
	return !b.set
}

// Extend grows b to contain pt.
func (b Bounds) Extend(pt Point) Bounds {
	if !b.set {
		return Bounds{Min: pt, Max: pt, set: true}
	}
	b.Min.X = math.Min(b.Min.X, pt.X)
	b.Min.Y = math.Min(b.Min.Y, pt.Y)
	b.Max.X = math.Max(b.Max.X, pt.X)
	b.Max.Y = math.Max(b.Max.Y, pt.Y)
	return b
}

// Union returns the smallest box holding both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.Empty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Dx is the width of the box
func (b Bounds) Dx() float64 {
	return b.Max.X - b.Min.X
}

// Dy is the height of the box
func (b Bounds) Dy() float64 {
	return b.Max.Y - b.Min.Y
}

// Center of the box
func (b Bounds) Center() Point {
	return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Pad grows the box by d on every side (shrinks it when d < 0).
func (b Bounds) Pad(d float64) Bounds {
	if !b.set {
		return b
	}
	b.Min.X -= d
	b.Min.Y -= d
	b.Max.X += d
	b.Max.Y += d
	return b
}
