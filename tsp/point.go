package tsp

import "math"

// Point is an immutable 2-D location with a stable identity.
// Two points are the same point iff their IDs match; equal coordinates do not
// make points equal.
type Point struct {
	ID int
	X  float64
	Y  float64
}

// Distance returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// DistanceTo is the method form of Distance.
func (p Point) DistanceTo(q Point) float64 {
	return Distance(p, q)
}

// finite reports whether both coordinates are finite numbers.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
