package tsp

import "math"

// SpanningTreeBound returns the weight of a minimum spanning tree over in.
// Removing one edge from any closed tour leaves a spanning path, so every
// tour is at least this long. Instances with N ≤ 1 return 0.
//
// Time:  O(n²) using Prim’s algorithm on the dense table.
// Space: O(n).
func SpanningTreeBound(in *Instance) float64 {
	if in == nil || in.n <= 1 {
		return 0
	}
	var n = in.n

	inTree := make([]bool, n)
	bestCost := make([]float64, n)

	var (
		v, it int
		u     int
		minW  float64
		total float64
		d     float64
	)
	for v = range bestCost {
		bestCost[v] = math.Inf(1)
	}
	bestCost[0] = 0

	for it = 0; it < n; it++ {
		// Vertex outside the tree with the cheapest connecting edge.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		inTree[u] = true
		total += minW

		for v = 0; v < n; v++ {
			if d = in.Distance(u, v); !inTree[v] && d < bestCost[v] {
				bestCost[v] = d
			}
		}
	}

	return round1e9(total)
}
