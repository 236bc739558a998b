package persistence

import (
	"golang.org/x/sync/errgroup"

	"github.com/mirvel/tdakit/simplex"
	"github.com/mirvel/tdakit/zp"
)

// BoundaryMatrix holds, per dimension, the raw signed incidence columns of
// a filtration over a fixed field. Columns follow the filtration order;
// row keys are ranks in the filtration order of the dimension below.
// A BoundaryMatrix is immutable once built; reducers copy what they mutate.
type BoundaryMatrix struct {
	filt   *simplex.Filtration
	field  *zp.Field
	maxDim int

	perm [][]int // perm[d][pos] = insertion index of the pos-th d-simplex in filtration order
	rank [][]int // rank[d][idx] = filtration position of insertion index idx
	cols [][]Chain
}

// NewBoundary assembles the boundary matrix of f over field. Raw columns
// are independent of one another, so assembly fans out across dimensions
// via an errgroup; everything downstream of this point is deterministic.
//
// Complexity: O(m·k) where m is the simplex count and k the top dimension
// (each column has dim+1 entries).
func NewBoundary(f *simplex.Filtration, field *zp.Field) (*BoundaryMatrix, error) {
	if f == nil {
		return nil, ErrNilFiltration
	}
	if field == nil {
		return nil, ErrNilField
	}

	maxDim := f.MaxDim()
	bm := &BoundaryMatrix{
		filt:   f,
		field:  field,
		maxDim: maxDim,
	}
	if maxDim < 0 {
		return bm, nil
	}

	// Filtration positions per dimension: the restriction of the total
	// order to one dimension is the column (and row) order of that
	// dimension's matrix.
	bm.perm = make([][]int, maxDim+1)
	bm.rank = make([][]int, maxDim+1)
	for _, e := range f.Order() {
		bm.rank[e.Dim] = append(bm.rank[e.Dim], 0) // sized below
		bm.perm[e.Dim] = append(bm.perm[e.Dim], e.Idx)
	}
	for d := 0; d <= maxDim; d++ {
		for pos, idx := range bm.perm[d] {
			bm.rank[d][idx] = pos
		}
	}

	bm.cols = make([][]Chain, maxDim+1)
	var g errgroup.Group
	for d := 1; d <= maxDim; d++ {
		d := d
		bm.cols[d] = make([]Chain, len(bm.perm[d]))
		g.Go(func() error {
			for pos, idx := range bm.perm[d] {
				s, err := f.ByIndex(d, idx)
				if err != nil {
					return err
				}
				col := make(Chain, d+1)
				for i, facet := range s.Facets() {
					fd, fi, ok := f.Index(facet)
					if !ok || fd != d-1 {
						// A face-closed complex cannot miss a facet.
						return ErrIndexOutOfRange
					}
					sign := int64(1)
					if i%2 == 1 {
						sign = -1
					}
					col[bm.rank[d-1][fi]] = field.Norm(sign)
				}
				bm.cols[d][pos] = col
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bm, nil
}

// Field returns the coefficient field the matrix was built over.
func (bm *BoundaryMatrix) Field() *zp.Field { return bm.field }

// Filtration returns the source filtration (read-only by contract).
func (bm *BoundaryMatrix) Filtration() *simplex.Filtration { return bm.filt }

// MaxDim returns the highest simplex dimension covered, or -1 when empty.
func (bm *BoundaryMatrix) MaxDim() int { return bm.maxDim }

// cloneColumns hands a reducer its private mutable copy.
func (bm *BoundaryMatrix) cloneColumns() [][]Chain {
	out := make([][]Chain, len(bm.cols))
	for d, cols := range bm.cols {
		if cols == nil {
			continue
		}
		out[d] = make([]Chain, len(cols))
		for pos, col := range cols {
			out[d][pos] = col.Clone()
		}
	}

	return out
}
