package simplex_test

import (
	"fmt"

	"github.com/mirvel/tdakit/simplex"
)

// ExampleComplex_AddRecursive closes a triangle under faces in one call.
func ExampleComplex_AddRecursive() {
	c := simplex.NewComplex()

	if _, err := c.AddRecursive(simplex.New(0, 1, 2)); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", c.Count(0))
	fmt.Println("edges:   ", c.Count(1))
	fmt.Println("faces:   ", c.Count(2))
	// Output:
	// vertices: 3
	// edges:    3
	// faces:    1
}

// ExampleFiltration_Order shows the total order used by the reducer:
// births ascend, and at equal birth every face precedes its cofaces.
func ExampleFiltration_Order() {
	f := simplex.NewFiltration()
	f.AddRecursive(0.0, simplex.New(0, 1))
	f.AddRecursive(0.5, simplex.New(1, 2))

	for _, e := range f.Order() {
		s, _ := f.ByIndex(e.Dim, e.Idx)
		fmt.Printf("%.1f dim=%d %v\n", e.Birth, e.Dim, s)
	}
	// Output:
	// 0.0 dim=0 {0}
	// 0.0 dim=0 {1}
	// 0.0 dim=1 {0 1}
	// 0.5 dim=0 {2}
	// 0.5 dim=1 {1 2}
}
