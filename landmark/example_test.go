package landmark_test

import (
	"fmt"

	"github.com/mirvel/tdakit/distmat"
	"github.com/mirvel/tdakit/landmark"
)

// ExampleMaxMin subsamples the corners of a unit square from corner 0.
// The second landmark is the diagonally opposite corner, the farthest
// point from the seed.
func ExampleMaxMin() {
	m, _ := distmat.FromPoints([][]float64{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
	}, nil)

	seq, _ := landmark.MaxMin(m, 0)

	fmt.Println("order:", seq.Indices)
	fmt.Printf("radius after 1: %.4f\n", seq.Radii[1])
	fmt.Printf("radius after 2: %.4f\n", seq.Radii[2])

	// Output:
	// order: [0 2 1 3]
	// radius after 1: 1.4142
	// radius after 2: 1.0000
}

// ExampleSequence_Prefix shrinks a matrix to its two best-covering points.
func ExampleSequence_Prefix() {
	m, _ := distmat.FromPoints([][]float64{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
	}, nil)
	seq, _ := landmark.MaxMin(m, 0)

	sub, _ := m.Submatrix(seq.Prefix(2))
	fmt.Println("points:", sub.N())
	fmt.Printf("spread: %.4f\n", sub.Dist(0, 1))

	// Output:
	// points: 2
	// spread: 1.4142
}
