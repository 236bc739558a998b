package distmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a validated n×n symmetric distance matrix with zero diagonal.
// Data is stored row-major in a flat slice for cache friendliness.
// A Matrix is immutable once returned by a constructor; concurrent reads
// are always safe.
type Matrix struct {
	n    int       // matrix order
	data []float64 // flat backing storage, length n*n
}

// Metric maps two coordinate vectors to a non-negative distance.
type Metric func(a, b []float64) float64

// Euclidean is the L2 metric over raw coordinates.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan is the L1 metric over raw coordinates.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// New validates rows against the full distance-matrix contract and returns
// the ingested Matrix.
//
// Stage 1: shape — rows must form a non-empty n×n matrix (ErrNotSquare,
// ErrEmptyInput).
// Stage 2: values — zero diagonal within eps, no negatives, no NaN, +Inf
// only under WithAllowInf.
// Stage 3: symmetry — |d[i][j] − d[j][i]| ≤ eps over the upper triangle.
//
// Complexity: O(n²) time, O(n²) memory.
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(rows[i]), n)
		}
	}

	m := &Matrix{n: n, data: make([]float64, n*n)}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return nil, fmt.Errorf("%w at (%d,%d)", ErrNaN, i, j)
			}
			if math.IsInf(v, 1) && !o.AllowInf {
				return nil, fmt.Errorf("%w at (%d,%d)", ErrNaN, i, j)
			}
			if i == j && math.Abs(v) > o.Eps {
				return nil, fmt.Errorf("%w at (%d,%d): %v", ErrNonZeroDiagonal, i, i, v)
			}
			if i != j && v < 0 {
				return nil, fmt.Errorf("%w at (%d,%d): %v", ErrNegativeDistance, i, j, v)
			}
			m.data[i*n+j] = v
		}
	}

	// Symmetry over the upper triangle only; both entries already value-checked.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > o.Eps {
				return nil, fmt.Errorf("%w at (%d,%d): %v vs %v",
					ErrAsymmetric, i, j, m.data[i*n+j], m.data[j*n+i])
			}
		}
	}

	return m, nil
}

// FromPoints reduces raw coordinates plus a Metric callback to a validated
// Matrix. A nil metric defaults to Euclidean. The metric is evaluated once
// per unordered pair and mirrored, so the result is symmetric by
// construction and validation cannot fail on symmetry.
//
// Complexity: O(n² · dim) time, O(n²) memory.
func FromPoints(pts [][]float64, metric Metric, opts ...Option) (*Matrix, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyInput
	}
	if metric == nil {
		metric = Euclidean
	}

	n := len(pts)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric(pts[i], pts[j])
			rows[i][j] = d
			rows[j][i] = d
		}
	}

	return New(rows, opts...)
}

// N returns the matrix order.
func (m *Matrix) N() int { return m.n }

// At returns the entry at (i, j) with bounds checking.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: (%d,%d) outside [0,%d)", ErrOutOfRange, i, j, m.n)
	}

	return m.data[i*m.n+j], nil
}

// Dist returns the entry at (i, j) without bounds checking. It exists for
// validated inner loops (Rips expansion, MaxMin scans); callers own the
// range guarantee.
func (m *Matrix) Dist(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// Submatrix returns the restriction of m to the given point indices, in the
// given order. Duplicate indices are permitted (the result then violates no
// contract: the diagonal stays zero and symmetry is preserved). An index
// outside [0, n) yields ErrOutOfRange.
//
// Complexity: O(k²) for k = len(indices).
func (m *Matrix) Submatrix(indices []int) (*Matrix, error) {
	k := len(indices)
	if k == 0 {
		return nil, ErrEmptyInput
	}
	for _, idx := range indices {
		if idx < 0 || idx >= m.n {
			return nil, fmt.Errorf("%w: index %d outside [0,%d)", ErrOutOfRange, idx, m.n)
		}
	}

	sub := &Matrix{n: k, data: make([]float64, k*k)}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			sub.data[i*k+j] = m.data[indices[i]*m.n+indices[j]]
		}
	}

	return sub, nil
}
