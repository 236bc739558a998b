package simplex_test

import (
	"testing"

	"github.com/mirvel/tdakit/simplex"
)

// BenchmarkAddRecursive_Tetrahedra measures recursive closure of disjoint
// 3-simplices (15 faces each).
func BenchmarkAddRecursive_Tetrahedra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := simplex.NewComplex()
		for k := 0; k < 64; k++ {
			v := k * 4
			_, _ = c.AddRecursive(simplex.New(v, v+1, v+2, v+3))
		}
	}
}

// BenchmarkFiltrationOrder measures total-order materialization for a chain
// filtration of 2048 edges.
func BenchmarkFiltrationOrder(b *testing.B) {
	f := simplex.NewFiltration()
	for i := 0; i < 2048; i++ {
		_, _ = f.AddRecursive(float64(i), simplex.New(i, i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.AddRecursive(float64(2048+i), simplex.New(2048+i, 2049+i))
		_ = f.Order()
	}
}
