package simplex

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Complex is a face-closed simplicial complex with stable per-dimension
// insertion indices. Both storage strategies (general and capacity-bounded)
// expose exactly this contract; pick one via NewComplex or NewBounded.
//
// A Complex handed to the persistence reducer is treated as immutable:
// there is no removal operation, and downstream components only read.
type Complex interface {
	// Add appends s with the next free index of its dimension.
	// Fails with ErrFaceMissing when any facet is absent, and with
	// ErrDuplicateSimplex when the vertex set is already stored.
	Add(s Simplex) (int, error)

	// AddRecursive inserts every missing face of s in increasing-dimension
	// order, then s itself. It never fails due to missing faces; an
	// existing face (or an existing s) is left untouched and its index
	// reused.
	AddRecursive(s Simplex) (int, error)

	// Simplices returns the simplices of the given dimension in insertion
	// order. The returned slice is a copy; mutating it is safe.
	Simplices(dim int) []Simplex

	// Count returns the number of simplices of the given dimension.
	Count(dim int) int

	// Size returns the total number of simplices across all dimensions.
	Size() int

	// MaxDim returns the highest dimension stored, or -1 when empty.
	MaxDim() int

	// Index locates s by vertex-set identity, returning its dimension and
	// insertion index.
	Index(s Simplex) (dim, idx int, ok bool)

	// ByIndex returns the simplex stored at (dim, idx), or
	// ErrIndexOutOfRange.
	ByIndex(dim, idx int) (Simplex, error)
}

// indexTable is the per-dimension, insertion-ordered backing store shared
// by both strategies.
type indexTable struct {
	byDim [][]Simplex
}

func (t *indexTable) put(s Simplex) int {
	d := s.Dim()
	for len(t.byDim) <= d {
		t.byDim = append(t.byDim, nil)
	}
	t.byDim[d] = append(t.byDim[d], s.Clone())

	return len(t.byDim[d]) - 1
}

func (t *indexTable) simplices(dim int) []Simplex {
	if dim < 0 || dim >= len(t.byDim) {
		return nil
	}
	out := make([]Simplex, len(t.byDim[dim]))
	for i, s := range t.byDim[dim] {
		out[i] = s.Clone()
	}

	return out
}

func (t *indexTable) count(dim int) int {
	if dim < 0 || dim >= len(t.byDim) {
		return 0
	}

	return len(t.byDim[dim])
}

func (t *indexTable) size() int {
	total := 0
	for _, ds := range t.byDim {
		total += len(ds)
	}

	return total
}

func (t *indexTable) maxDim() int {
	for d := len(t.byDim) - 1; d >= 0; d-- {
		if len(t.byDim[d]) > 0 {
			return d
		}
	}

	return -1
}

func (t *indexTable) byIndex(dim, idx int) (Simplex, error) {
	if dim < 0 || dim >= len(t.byDim) || idx < 0 || idx >= len(t.byDim[dim]) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfRange, dim, idx)
	}

	return t.byDim[dim][idx].Clone(), nil
}

// ---------------------------------------------------------------------------
// General strategy: grow-as-needed, insertion-ordered key maps.
// ---------------------------------------------------------------------------

// generalComplex keeps one insertion-ordered map per dimension from
// canonical vertex-set key to insertion index.
type generalComplex struct {
	tab  indexTable
	keys []*linkedhashmap.Map
}

// NewComplex returns an empty complex using the general storage strategy.
func NewComplex() Complex {
	return &generalComplex{}
}

func (c *generalComplex) keyMap(dim int) *linkedhashmap.Map {
	for len(c.keys) <= dim {
		c.keys = append(c.keys, linkedhashmap.New())
	}

	return c.keys[dim]
}

func (c *generalComplex) Add(s Simplex) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}

	return addChecked(c, s, func(v Simplex) int {
		idx := c.tab.put(v)
		c.keyMap(v.Dim()).Put(v.Key(), idx)

		return idx
	})
}

func (c *generalComplex) AddRecursive(s Simplex) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}

	return addRecursiveChecked(c, s)
}

func (c *generalComplex) Simplices(dim int) []Simplex { return c.tab.simplices(dim) }
func (c *generalComplex) Count(dim int) int           { return c.tab.count(dim) }
func (c *generalComplex) Size() int                   { return c.tab.size() }
func (c *generalComplex) MaxDim() int                 { return c.tab.maxDim() }

func (c *generalComplex) Index(s Simplex) (int, int, bool) {
	d := s.Dim()
	if d < 0 || d >= len(c.keys) {
		return 0, 0, false
	}
	v, ok := c.keys[d].Get(s.Key())
	if !ok {
		return 0, 0, false
	}

	return d, v.(int), true
}

func (c *generalComplex) ByIndex(dim, idx int) (Simplex, error) {
	return c.tab.byIndex(dim, idx)
}

// ---------------------------------------------------------------------------
// Capacity-bounded strategy: declared vertex count and maximum dimension.
// ---------------------------------------------------------------------------

type dimIdx struct {
	dim, idx int
}

// boundedComplex enforces a declared vertex range [0, nVerts) and a maximum
// simplex dimension. Storage headers are preallocated; insertion beyond the
// declared bounds fails with ErrCapacityExceeded before any mutation.
type boundedComplex struct {
	tab    indexTable
	nVerts int
	max    int
	lookup map[string]dimIdx
}

// NewBounded returns an empty capacity-bounded complex accepting vertices
// in [0, numVertices) and simplices up to maxDim. Nonsensical bounds yield
// ErrCapacityExceeded.
func NewBounded(numVertices, maxDim int) (Complex, error) {
	if numVertices < 1 || maxDim < 0 {
		return nil, ErrCapacityExceeded
	}

	return &boundedComplex{
		tab:    indexTable{byDim: make([][]Simplex, maxDim+1)},
		nVerts: numVertices,
		max:    maxDim,
		lookup: make(map[string]dimIdx),
	}, nil
}

func (c *boundedComplex) checkCapacity(s Simplex) error {
	if s.Dim() > c.max || s.maxVertex() >= c.nVerts {
		return fmt.Errorf("%w: %s outside %d vertices / max dimension %d",
			ErrCapacityExceeded, s, c.nVerts, c.max)
	}

	return nil
}

func (c *boundedComplex) Add(s Simplex) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	if err := c.checkCapacity(s); err != nil {
		return 0, err
	}

	return addChecked(c, s, func(v Simplex) int {
		idx := c.tab.put(v)
		c.lookup[v.Key()] = dimIdx{dim: v.Dim(), idx: idx}

		return idx
	})
}

func (c *boundedComplex) AddRecursive(s Simplex) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	// Capacity is determined by s alone: every face fits if s fits, so the
	// recursive insertion below cannot fail mid-way.
	if err := c.checkCapacity(s); err != nil {
		return 0, err
	}

	return addRecursiveChecked(c, s)
}

func (c *boundedComplex) Simplices(dim int) []Simplex { return c.tab.simplices(dim) }
func (c *boundedComplex) Count(dim int) int           { return c.tab.count(dim) }
func (c *boundedComplex) Size() int                   { return c.tab.size() }
func (c *boundedComplex) MaxDim() int                 { return c.tab.maxDim() }

func (c *boundedComplex) Index(s Simplex) (int, int, bool) {
	pos, ok := c.lookup[s.Key()]
	if !ok {
		return 0, 0, false
	}

	return pos.dim, pos.idx, true
}

func (c *boundedComplex) ByIndex(dim, idx int) (Simplex, error) {
	return c.tab.byIndex(dim, idx)
}

// ---------------------------------------------------------------------------
// Shared insertion logic.
// ---------------------------------------------------------------------------

// addChecked performs the duplicate and facet-presence checks, then commits
// via put. Validation precedes every mutation, so failures leave the
// complex unchanged.
func addChecked(c Complex, s Simplex, put func(Simplex) int) (int, error) {
	if _, _, ok := c.Index(s); ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateSimplex, s)
	}
	for _, f := range s.Facets() {
		if _, _, ok := c.Index(f); !ok {
			return 0, fmt.Errorf("%w: facet %s of %s", ErrFaceMissing, f, s)
		}
	}

	return put(s), nil
}

// addRecursiveChecked inserts missing faces in increasing-dimension order,
// then s itself. An existing s short-circuits to its stored index.
func addRecursiveChecked(c Complex, s Simplex) (int, error) {
	if _, idx, ok := c.Index(s); ok {
		return idx, nil
	}
	// subsets() is grouped by ascending size, so every facet of a subset
	// appears before the subset itself.
	for _, sub := range s.subsets() {
		if _, _, ok := c.Index(sub); ok {
			continue
		}
		if _, err := c.Add(sub); err != nil {
			return 0, err
		}
	}

	return c.Add(s)
}
