package persistence

import (
	"math"

	"github.com/mirvel/tdakit/simplex"
	"github.com/mirvel/tdakit/zp"
)

// Reducer owns a private copy of a boundary matrix and reduces it into a
// persistence diagram. The source matrix and filtration stay untouched.
type Reducer struct {
	bm    *BoundaryMatrix
	field *zp.Field

	cols [][]Chain // mutable working columns, keyed by row rank
	v    [][]Chain // reduction combinations: v[d][pos] over column positions of dim d
}

// NewReducer wraps bm for reduction over field. The field must match the
// one the matrix was built over (ErrFieldMismatch otherwise): all column
// arithmetic below assumes the stored coefficients are residues of exactly
// this modulus.
func NewReducer(bm *BoundaryMatrix, field *zp.Field) (*Reducer, error) {
	if bm == nil {
		return nil, ErrNilFiltration
	}
	if field == nil {
		return nil, ErrNilField
	}
	if field.P() != bm.field.P() {
		return nil, ErrFieldMismatch
	}

	return &Reducer{bm: bm, field: field}, nil
}

// Run is the convenience pipeline: boundary assembly, reduction, diagram.
func Run(f *simplex.Filtration, field *zp.Field) (*Diagram, error) {
	bm, err := NewBoundary(f, field)
	if err != nil {
		return nil, err
	}
	r, err := NewReducer(bm, field)
	if err != nil {
		return nil, err
	}

	return r.Reduce()
}

// Reduce runs the standard persistence reduction and returns the diagram.
//
// Columns are processed per dimension in filtration order. While a
// column's low is claimed by an earlier column, the claimant (the unique
// entry of the low table — earliest stabilized, left-to-right) is
// subtracted, scaled by entry_j[low]/entry_i[low]. Over GF(2) the scale is
// always 1 and the subtraction degenerates to a symmetric difference.
//
// Reduce is idempotent: after the first call every nonzero column owns a
// unique low, so a repeated call performs no column operation and returns
// an equal diagram.
//
// Complexity: O(m³) worst case over all columns; far lower on typical
// filtrations.
func (r *Reducer) Reduce() (*Diagram, error) {
	if r.cols == nil {
		r.cols = r.bm.cloneColumns()
		r.v = identityCombinations(r.bm)
	}

	bm := r.bm
	dgm := &Diagram{field: r.field, cycles: make(map[cycleKey]Chain)}
	if bm.maxDim < 0 {
		return dgm, nil
	}

	// killed[d][pos]: the d-simplex at filtration position pos was claimed
	// as a low during the reduction of dimension d+1.
	killed := make([][]bool, bm.maxDim+1)
	for d := 0; d <= bm.maxDim; d++ {
		killed[d] = make([]bool, len(bm.perm[d]))
	}

	for d := 1; d <= bm.maxDim; d++ {
		lowClaim := make(map[int]int, len(r.cols[d])) // row rank → column position
		for pos := 0; pos < len(r.cols[d]); pos++ {
			low, err := r.reduceColumn(d, pos, lowClaim)
			if err != nil {
				return nil, err
			}
			if low < 0 {
				continue // zeroed out: a birth in dimension d
			}

			lowClaim[low] = pos
			killed[d-1][low] = true
			pair, cycle, err := r.finitePair(d, pos, low)
			if err != nil {
				return nil, err
			}
			dgm.pairs = append(dgm.pairs, pair)
			dgm.cycles[cycleKey{dim: pair.Dim, birthIdx: pair.BirthIndex}] = cycle
		}
	}

	// Unclaimed zero columns are infinite bars. Dimension-0 columns are
	// all zero by definition (the boundary of a vertex is empty).
	for d := 0; d <= bm.maxDim; d++ {
		for pos := range bm.perm[d] {
			if killed[d][pos] {
				continue
			}
			if d > 0 && len(r.cols[d][pos]) != 0 {
				continue // a death column, already paired above
			}
			pair, cycle, err := r.infinitePair(d, pos)
			if err != nil {
				return nil, err
			}
			dgm.pairs = append(dgm.pairs, pair)
			dgm.cycles[cycleKey{dim: d, birthIdx: pair.BirthIndex}] = cycle
		}
	}

	dgm.sortPairs()

	return dgm, nil
}

// reduceColumn cancels claimed lows until the column zeroes out (returns
// -1) or stabilizes on an unclaimed low (returned). The combination
// columns in r.v mirror every subtraction.
func (r *Reducer) reduceColumn(d, pos int, lowClaim map[int]int) (int, error) {
	col := r.cols[d][pos]
	for {
		low := maxRow(col)
		if low < 0 {
			return -1, nil
		}
		claimant, contested := lowClaim[low]
		if !contested {
			return low, nil
		}

		pivot := r.cols[d][claimant]
		inv, err := r.field.Inv(pivot[low])
		if err != nil {
			return 0, err
		}
		factor := r.field.Mul(col[low], inv)
		subtractScaled(r.field, col, pivot, factor)
		subtractScaled(r.field, r.v[d][pos], r.v[d][claimant], factor)
	}
}

// finitePair assembles the pair killed at (d, pos) with birth row low, plus
// its representative: the stabilized death column, a (d-1)-chain.
func (r *Reducer) finitePair(d, pos, low int) (Pair, Chain, error) {
	bm := r.bm
	birthIdx := bm.perm[d-1][low]
	deathIdx := bm.perm[d][pos]

	birth, err := bm.filt.Birth(d-1, birthIdx)
	if err != nil {
		return Pair{}, nil, err
	}
	death, err := bm.filt.Birth(d, deathIdx)
	if err != nil {
		return Pair{}, nil, err
	}

	cycle := make(Chain, len(r.cols[d][pos]))
	for rank, coeff := range r.cols[d][pos] {
		cycle[bm.perm[d-1][rank]] = coeff
	}

	return Pair{
		Dim:        d - 1,
		BirthIndex: birthIdx,
		DeathIndex: deathIdx,
		Birth:      birth,
		Death:      death,
	}, cycle, nil
}

// infinitePair assembles the unbounded bar born at (d, pos), representing
// it by the accumulated combination (V column) of the zeroed birth column.
func (r *Reducer) infinitePair(d, pos int) (Pair, Chain, error) {
	bm := r.bm
	birthIdx := bm.perm[d][pos]
	birth, err := bm.filt.Birth(d, birthIdx)
	if err != nil {
		return Pair{}, nil, err
	}

	cycle := make(Chain, len(r.v[d][pos]))
	for p, coeff := range r.v[d][pos] {
		cycle[bm.perm[d][p]] = coeff
	}

	return Pair{
		Dim:        d,
		BirthIndex: birthIdx,
		DeathIndex: NoDeath,
		Birth:      birth,
		Death:      math.Inf(1),
		Infinite:   true,
	}, cycle, nil
}

// Column returns the reduced column of the simplex with insertion index
// idx in dimension dim: a chain over dimension dim-1, keyed by insertion
// index. Dimension-0 columns are empty. Reduce must have run; otherwise,
// and for unknown coordinates, ErrIndexOutOfRange.
func (r *Reducer) Column(dim, idx int) (Chain, error) {
	bm := r.bm
	if r.cols == nil || dim < 0 || dim > bm.maxDim || idx < 0 || idx >= len(bm.rank[dim]) {
		return nil, ErrIndexOutOfRange
	}
	if dim == 0 {
		return Chain{}, nil
	}

	col := r.cols[dim][bm.rank[dim][idx]]
	out := make(Chain, len(col))
	for rank, coeff := range col {
		out[bm.perm[dim-1][rank]] = coeff
	}

	return out, nil
}

// identityCombinations seeds V: each column starts as itself.
func identityCombinations(bm *BoundaryMatrix) [][]Chain {
	v := make([][]Chain, bm.maxDim+1)
	for d := 0; d <= bm.maxDim; d++ {
		v[d] = make([]Chain, len(bm.perm[d]))
		for pos := range v[d] {
			v[d][pos] = Chain{pos: bm.field.Norm(1)}
		}
	}

	return v
}

// maxRow returns the highest row rank of a column, or -1 when empty.
func maxRow(c Chain) int {
	low := -1
	for rank := range c {
		if rank > low {
			low = rank
		}
	}

	return low
}

// subtractScaled performs dst -= factor·src in the field, deleting entries
// that cancel to zero so sparsity (and maxRow) stay honest.
func subtractScaled(f *zp.Field, dst, src Chain, factor zp.Element) {
	for rank, coeff := range src {
		next := f.Sub(dst[rank], f.Mul(factor, coeff))
		if next == 0 {
			delete(dst, rank)
		} else {
			dst[rank] = next
		}
	}
}
