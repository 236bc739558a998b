package persistence

import (
	"errors"
	"math"
	"sort"

	"github.com/mirvel/tdakit/zp"
)

var (
	// ErrNilFiltration indicates a nil filtration was passed to NewBoundary.
	ErrNilFiltration = errors.New("persistence: filtration is nil")

	// ErrNilField indicates a nil field was passed to a constructor.
	ErrNilField = errors.New("persistence: field is nil")

	// ErrFieldMismatch indicates the reducer's field differs from the one
	// the boundary matrix was built over.
	ErrFieldMismatch = errors.New("persistence: field mismatch")

	// ErrIndexOutOfRange indicates a pair or column lookup outside the
	// reduced state.
	ErrIndexOutOfRange = errors.New("persistence: index out of range")
)

// NoDeath is the DeathIndex placeholder of an infinite pair. Check the
// Infinite flag, not this value, when deciding how to render a pair.
const NoDeath = -1

// Chain is a sparse field-weighted set of simplices of one dimension,
// keyed by insertion index.
type Chain map[int]zp.Element

// Clone returns an independent copy of c.
func (c Chain) Clone() Chain {
	out := make(Chain, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// Pair is one persistence interval: a class of dimension Dim born when the
// simplex (Dim, BirthIndex) enters at value Birth, dying when
// (Dim+1, DeathIndex) enters at value Death. Infinite pairs never die:
// their DeathIndex is NoDeath and Death is +Inf.
type Pair struct {
	Dim        int
	BirthIndex int
	DeathIndex int
	Birth      float64
	Death      float64
	Infinite   bool
}

// Persistence returns Death − Birth (+Inf for infinite pairs).
func (p Pair) Persistence() float64 {
	if p.Infinite {
		return math.Inf(1)
	}

	return p.Death - p.Birth
}

// Diagram is the immutable outcome of a reduction: persistence pairs per
// dimension plus their representative cycles.
type Diagram struct {
	field  *zp.Field
	pairs  []Pair
	cycles map[cycleKey]Chain
}

type cycleKey struct {
	dim, birthIdx int
}

// Field returns the coefficient field the diagram was computed over.
func (d *Diagram) Field() *zp.Field { return d.field }

// Pairs returns the pairs of one homology dimension, sorted by (Birth,
// BirthIndex). The slice is a fresh copy.
func (d *Diagram) Pairs(dim int) []Pair {
	var out []Pair
	for _, p := range d.pairs {
		if p.Dim == dim {
			out = append(out, p)
		}
	}

	return out
}

// AllPairs returns every pair across all dimensions, sorted by (Dim,
// Birth, BirthIndex). The slice is a fresh copy.
func (d *Diagram) AllPairs() []Pair {
	out := make([]Pair, len(d.pairs))
	copy(out, d.pairs)

	return out
}

// MaxDim returns the highest homology dimension with at least one pair,
// or -1 for an empty diagram.
func (d *Diagram) MaxDim() int {
	max := -1
	for _, p := range d.pairs {
		if p.Dim > max {
			max = p.Dim
		}
	}

	return max
}

// Cycle returns the representative chain of p: simplices of dimension
// p.Dim, keyed by insertion index, weighted in the diagram's field.
// Unknown pairs yield ErrIndexOutOfRange.
func (d *Diagram) Cycle(p Pair) (Chain, error) {
	c, ok := d.cycles[cycleKey{dim: p.Dim, birthIdx: p.BirthIndex}]
	if !ok {
		return nil, ErrIndexOutOfRange
	}

	return c.Clone(), nil
}

// sortPairs fixes the presentation order: dimension, then birth value,
// then birth index.
func (d *Diagram) sortPairs() {
	sort.Slice(d.pairs, func(a, b int) bool {
		pa, pb := d.pairs[a], d.pairs[b]
		if pa.Dim != pb.Dim {
			return pa.Dim < pb.Dim
		}
		if pa.Birth != pb.Birth {
			return pa.Birth < pb.Birth
		}

		return pa.BirthIndex < pb.BirthIndex
	})
}
