package landmark

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mirvel/tdakit/distmat"
)

var (
	// ErrNilMatrix indicates a nil distance matrix.
	ErrNilMatrix = errors.New("landmark: distance matrix is nil")

	// ErrInvalidSeed indicates a seed index outside [0, n).
	ErrInvalidSeed = errors.New("landmark: seed index out of range")
)

// Sequence is the outcome of a full MaxMin pass: the selected order of all
// n points and the covering radius of every prefix.
type Sequence struct {
	// Indices is a permutation of 0..n-1; Indices[0] is the seed.
	Indices []int

	// Radii[k] is the covering radius of the first k landmarks: the
	// maximum over all points of the distance to the nearest one of them.
	// Radii[0] is +Inf, Radii[n] is 0, and the slice never increases.
	Radii []float64
}

// Prefix returns the first k selected indices, in selection order. The
// slice is a fresh copy, shaped for distmat.Submatrix. Out-of-range k is
// clamped to [0, n].
func (s *Sequence) Prefix(k int) []int {
	if k < 0 {
		k = 0
	}
	if k > len(s.Indices) {
		k = len(s.Indices)
	}
	out := make([]int, k)
	copy(out, s.Indices[:k])

	return out
}

// MaxMin runs farthest-point sampling over m starting from seed.
//
// Each step appends the point farthest from the current landmark set (ties
// broken toward the smallest index) and relaxes the nearest-landmark
// distances against the new landmark's row. The covering radius is read
// off just before each selection, so Radii[k] describes exactly the first
// k landmarks.
//
// Complexity: O(n²).
func MaxMin(m *distmat.Matrix, seed int) (*Sequence, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.N()
	if seed < 0 || seed >= n {
		return nil, fmt.Errorf("%w: %d outside [0,%d)", ErrInvalidSeed, seed, n)
	}

	indices := make([]int, 0, n)
	radii := make([]float64, 0, n+1)
	radii = append(radii, math.Inf(1))

	nearest := m.Row(seed)
	indices = append(indices, seed)

	for len(indices) < n {
		next := floats.MaxIdx(nearest)
		radii = append(radii, nearest[next])
		indices = append(indices, next)
		for i := 0; i < n; i++ {
			if d := m.Dist(next, i); d < nearest[i] {
				nearest[i] = d
			}
		}
	}
	radii = append(radii, 0)

	return &Sequence{Indices: indices, Radii: radii}, nil
}
