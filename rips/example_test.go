package rips_test

import (
	"fmt"

	"github.com/mirvel/tdakit/distmat"
	"github.com/mirvel/tdakit/rips"
)

// ExampleBuild constructs the Rips filtration of a unit square and reports
// the simplex counts per dimension at two radius bounds.
func ExampleBuild() {
	pts := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	m, err := distmat.FromPoints(pts, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Sides only: the diagonals (length √2) stay out.
	tight, _ := rips.Build(m, rips.WithMaxRadius(1.0), rips.WithMaxDim(2))
	fmt.Println("r=1.0:", tight.Count(0), tight.Count(1), tight.Count(2))

	// Everything in: the square fills up to the full 3-skeleton's 2-faces.
	loose, _ := rips.Build(m, rips.WithMaxRadius(1.5), rips.WithMaxDim(2))
	fmt.Println("r=1.5:", loose.Count(0), loose.Count(1), loose.Count(2))
	// Output:
	// r=1.0: 4 4 0
	// r=1.5: 4 6 4
}
