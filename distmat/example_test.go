package distmat_test

import (
	"fmt"

	"github.com/mirvel/tdakit/distmat"
)

// ExampleFromPoints builds a distance matrix from raw 2D coordinates using
// the default Euclidean metric.
func ExampleFromPoints() {
	pts := [][]float64{{0, 0}, {3, 0}, {3, 4}}

	m, err := distmat.FromPoints(pts, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m.N())
	fmt.Println(m.Dist(0, 1), m.Dist(1, 2), m.Dist(0, 2))
	// Output:
	// 3
	// 3 4 5
}

// ExampleMatrix_Submatrix restricts a matrix to a landmark subset.
func ExampleMatrix_Submatrix() {
	m, _ := distmat.FromPoints([][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, nil)

	sub, _ := m.Submatrix([]int{0, 3})
	fmt.Println(sub.N(), sub.Dist(0, 1))
	// Output:
	// 2 3
}
