package simplex

import (
	"fmt"
	"math"
	"sort"
)

// Entry is one position of the total filtration order: the simplex at
// (Dim, Idx) entered the filtration at value Birth.
type Entry struct {
	Dim   int
	Idx   int
	Birth float64
}

// Filtration is a Complex whose simplices carry monotone birth values:
// birth(face) ≤ birth(coface) for every simplex and each of its faces.
// The zero value is unusable; construct via NewFiltration, NewBoundedFiltration
// or Constant.
type Filtration struct {
	cx     Complex
	births [][]float64 // parallel to the complex's (dim, idx) table
	order  []Entry     // cached total order; nil when stale
}

// NewFiltration returns an empty filtration over the general storage
// strategy.
func NewFiltration() *Filtration {
	return &Filtration{cx: NewComplex()}
}

// NewBoundedFiltration returns an empty filtration over the
// capacity-bounded strategy (see NewBounded).
func NewBoundedFiltration(numVertices, maxDim int) (*Filtration, error) {
	cx, err := NewBounded(numVertices, maxDim)
	if err != nil {
		return nil, err
	}

	return &Filtration{cx: cx}, nil
}

// Constant wraps an already-built complex with every birth fixed at the
// same value — the non-persistent (plain homology) case. The complex is
// read, never mutated.
func Constant(cx Complex, birth float64) *Filtration {
	f := &Filtration{cx: cx}
	for d := 0; d <= cx.MaxDim(); d++ {
		n := cx.Count(d)
		for i := 0; i < n; i++ {
			f.setBirth(d, i, birth)
		}
	}

	return f
}

func (f *Filtration) setBirth(dim, idx int, birth float64) {
	for len(f.births) <= dim {
		f.births = append(f.births, nil)
	}
	for len(f.births[dim]) <= idx {
		f.births[dim] = append(f.births[dim], 0)
	}
	f.births[dim][idx] = birth
	f.order = nil
}

// Add appends s at the given birth. Every facet must already be present
// (ErrFaceMissing) with a birth ≤ the supplied one (ErrInvalidFiltration).
// A NaN birth is rejected as ErrInvalidFiltration. On failure the
// filtration is unchanged.
func (f *Filtration) Add(birth float64, s Simplex) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(birth) {
		return 0, fmt.Errorf("%w: NaN birth for %s", ErrInvalidFiltration, s)
	}
	if _, _, ok := f.cx.Index(s); ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateSimplex, s)
	}
	for _, face := range s.Facets() {
		fd, fi, ok := f.cx.Index(face)
		if !ok {
			return 0, fmt.Errorf("%w: facet %s of %s", ErrFaceMissing, face, s)
		}
		if f.births[fd][fi] > birth {
			return 0, fmt.Errorf("%w: facet %s born %v, after %s at %v",
				ErrInvalidFiltration, face, f.births[fd][fi], s, birth)
		}
	}

	idx, err := f.cx.Add(s)
	if err != nil {
		return 0, err
	}
	f.setBirth(s.Dim(), idx, birth)

	return idx, nil
}

// AddRecursive inserts every missing face of s at the supplied birth, in
// increasing-dimension order, then s itself. Faces that already exist keep
// their stored births; an existing face younger than birth (including an
// existing s) is ErrInvalidFiltration. All checks run before any mutation.
func (f *Filtration) AddRecursive(birth float64, s Simplex) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(birth) {
		return 0, fmt.Errorf("%w: NaN birth for %s", ErrInvalidFiltration, s)
	}
	// Bounded strategy: s's own capacity bound covers every face, so a
	// single upfront check keeps the multi-insert atomic.
	if bc, ok := f.cx.(*boundedComplex); ok {
		if err := bc.checkCapacity(s); err != nil {
			return 0, err
		}
	}

	if d, idx, ok := f.cx.Index(s); ok {
		if f.births[d][idx] > birth {
			return 0, fmt.Errorf("%w: %s born %v, re-added at %v",
				ErrInvalidFiltration, s, f.births[d][idx], birth)
		}

		return idx, nil
	}

	subs := s.subsets()
	for _, sub := range subs {
		if sd, si, ok := f.cx.Index(sub); ok && f.births[sd][si] > birth {
			return 0, fmt.Errorf("%w: face %s born %v, after %s at %v",
				ErrInvalidFiltration, sub, f.births[sd][si], s, birth)
		}
	}

	for _, sub := range subs {
		if _, _, ok := f.cx.Index(sub); ok {
			continue
		}
		idx, err := f.cx.Add(sub)
		if err != nil {
			return 0, err
		}
		f.setBirth(sub.Dim(), idx, birth)
	}

	idx, err := f.cx.Add(s)
	if err != nil {
		return 0, err
	}
	f.setBirth(s.Dim(), idx, birth)

	return idx, nil
}

// Birth returns the birth value of the simplex at (dim, idx).
func (f *Filtration) Birth(dim, idx int) (float64, error) {
	if dim < 0 || dim >= len(f.births) || idx < 0 || idx >= len(f.births[dim]) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfRange, dim, idx)
	}

	return f.births[dim][idx], nil
}

// Order returns the total filtration order: birth ascending, dimension
// ascending, insertion index ascending. Dimension already places every
// face before its equal-birth cofaces, since faces have strictly smaller
// dimension. The slice is a fresh copy on every call; iterate freely.
//
// Complexity: O(m log m) on first call after a mutation, O(m) afterwards.
func (f *Filtration) Order() []Entry {
	if f.order == nil {
		entries := make([]Entry, 0, f.cx.Size())
		for d := 0; d <= f.cx.MaxDim(); d++ {
			n := f.cx.Count(d)
			for i := 0; i < n; i++ {
				entries = append(entries, Entry{Dim: d, Idx: i, Birth: f.births[d][i]})
			}
		}
		sort.SliceStable(entries, func(a, b int) bool {
			ea, eb := entries[a], entries[b]
			if ea.Birth != eb.Birth {
				return ea.Birth < eb.Birth
			}
			if ea.Dim != eb.Dim {
				return ea.Dim < eb.Dim
			}

			return ea.Idx < eb.Idx
		})
		f.order = entries
	}

	out := make([]Entry, len(f.order))
	copy(out, f.order)

	return out
}

// Simplices returns the simplices of the given dimension in insertion order.
func (f *Filtration) Simplices(dim int) []Simplex { return f.cx.Simplices(dim) }

// Count returns the number of simplices of the given dimension.
func (f *Filtration) Count(dim int) int { return f.cx.Count(dim) }

// Size returns the total number of simplices.
func (f *Filtration) Size() int { return f.cx.Size() }

// MaxDim returns the highest stored dimension, or -1 when empty.
func (f *Filtration) MaxDim() int { return f.cx.MaxDim() }

// Index locates s by vertex-set identity.
func (f *Filtration) Index(s Simplex) (dim, idx int, ok bool) { return f.cx.Index(s) }

// ByIndex returns the simplex stored at (dim, idx).
func (f *Filtration) ByIndex(dim, idx int) (Simplex, error) { return f.cx.ByIndex(dim, idx) }
