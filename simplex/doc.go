// Package simplex provides the simplicial primitives of tdakit: the Simplex
// value type, face-closed complexes with stable per-dimension indexing, and
// filtrations with monotone birth values.
//
// What
//
//   - Simplex: an ordered tuple of distinct non-negative vertex IDs.
//     Identity is the vertex *set*; the stored order matters only for the
//     sign bookkeeping of the boundary map.
//   - Complex: a face-closed collection of simplices. Each dimension keeps
//     its own insertion-ordered index sequence; every facet of a stored
//     simplex is stored too, with a compatible (earlier-or-equal) position.
//     Two storage strategies satisfy the same interface: the general
//     strategy (grow-as-needed, insertion-ordered hash maps) and a
//     capacity-bounded strategy (preallocated for a known vertex count and
//     maximum dimension). Constructor options pick the strategy.
//   - Filtration: a Complex plus a birth value per simplex, enforcing
//     birth(face) ≤ birth(coface). Order() materializes the total order —
//     birth ascending, dimension ascending, insertion index ascending —
//     that every boundary-matrix computation downstream depends on.
//
// Index ownership
//
//	Per-dimension index counters are fields of each instance. Two complexes
//	never share counters, so indices are reproducible regardless of what
//	else the process has built.
//
// Failure atomicity
//
//	Add and AddRecursive validate before mutating: on any error the
//	complex/filtration is left exactly as it was.
//
// Errors
//
//   - ErrMalformedSimplex — empty tuple, negative or repeated vertex.
//   - ErrFaceMissing — Add requires every facet to be present already.
//   - ErrDuplicateSimplex — Add of a vertex set that is already stored.
//   - ErrInvalidFiltration — a birth below (or a face above) the monotone
//     contract.
//   - ErrCapacityExceeded — bounded strategy only: vertex or dimension
//     beyond the declared capacity.
//   - ErrIndexOutOfRange — ByIndex/Birth lookups outside the stored range.
//
// Re-adding
//
//	Add returns ErrDuplicateSimplex for a vertex set already present.
//	AddRecursive treats existing faces (and an existing top simplex) as
//	satisfied: stored births are left untouched, but an existing face whose
//	birth exceeds the new simplex's birth is ErrInvalidFiltration.
package simplex
