package simplex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Simplex is an ordered tuple of distinct non-negative vertex IDs. Its
// dimension is len−1. Two simplices are the same entity iff they carry the
// same vertex set; the stored order only fixes boundary signs.
type Simplex []int

// New returns a Simplex over the given vertices, preserving their order.
func New(vertices ...int) Simplex {
	s := make(Simplex, len(vertices))
	copy(s, vertices)

	return s
}

// Dim returns the simplex dimension (vertex count minus one).
func (s Simplex) Dim() int { return len(s) - 1 }

// Clone returns an independent copy of s.
func (s Simplex) Clone() Simplex {
	out := make(Simplex, len(s))
	copy(out, s)

	return out
}

// Facets returns the co-dimension-1 faces of s in boundary order: the i-th
// facet omits the i-th stored vertex, preserving the order of the rest.
// A vertex (dimension 0) has no facets.
func (s Simplex) Facets() []Simplex {
	if len(s) <= 1 {
		return nil
	}
	out := make([]Simplex, len(s))
	for i := range s {
		f := make(Simplex, 0, len(s)-1)
		f = append(f, s[:i]...)
		f = append(f, s[i+1:]...)
		out[i] = f
	}

	return out
}

// Key returns the canonical set identity of s: vertex IDs sorted ascending,
// joined by commas. Simplices with equal keys are the same entity.
func (s Simplex) Key() string {
	sorted := make([]int, len(s))
	copy(sorted, s)
	sort.Ints(sorted)

	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// String renders s in its stored vertex order, e.g. "{0 2 1}".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')

	return b.String()
}

// validate rejects empty tuples, negative IDs, and repeated vertices.
func (s Simplex) validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty vertex tuple", ErrMalformedSimplex)
	}
	seen := make(map[int]struct{}, len(s))
	for _, v := range s {
		if v < 0 {
			return fmt.Errorf("%w: negative vertex %d in %s", ErrMalformedSimplex, v, s)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: repeated vertex %d in %s", ErrMalformedSimplex, v, s)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// maxVertex returns the largest vertex ID in s. s must be non-empty.
func (s Simplex) maxVertex() int {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

// subsets appends every proper non-empty subset of s (as a Simplex in the
// induced vertex order) to dst, grouped by ascending size. Used by
// recursive insertion; the fan-out is 2^len−2 but simplex dimensions stay
// small in practice.
func (s Simplex) subsets() []Simplex {
	n := len(s)
	var out []Simplex
	for size := 1; size < n; size++ {
		for mask := 1; mask < 1<<n; mask++ {
			if popcount(mask) != size {
				continue
			}
			sub := make(Simplex, 0, size)
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					sub = append(sub, s[i])
				}
			}
			out = append(out, sub)
		}
	}

	return out
}

// popcount counts set bits in a small mask.
func popcount(mask int) int {
	c := 0
	for mask != 0 {
		mask &= mask - 1
		c++
	}

	return c
}
