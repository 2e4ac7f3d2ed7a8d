package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/tspsolver/tsp"
)

func ExampleTourLength() {
	in, _ := tsp.NewInstance([]tsp.Point{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 3, Y: 0},
		{ID: 3, X: 3, Y: 4},
	})
	length, _ := tsp.TourLength(in, []int{0, 1, 2})
	fmt.Println(length)
	// Output: 12
}

func ExampleTweakAt() {
	in, _ := tsp.NewInstance([]tsp.Point{
		{ID: 1, X: 0, Y: 0}, {ID: 2, X: 1, Y: 0}, {ID: 3, X: 1, Y: 1},
		{ID: 4, X: 0, Y: 1}, {ID: 5, X: 2, Y: 2},
	})
	c, _ := tsp.NewCandidate(in, []int{1, 0, 2, 4, 3})
	next, _ := tsp.TweakAt(in, c, 0, 3)
	fmt.Println(next.Order)
	// Output: [4 2 0 1 3]
}
