// Package distmat provides the validated distance-matrix contract shared by
// every stage of the tdakit pipeline.
//
// What
//
//   - Matrix: a square, symmetric, non-negative matrix with zero diagonal,
//     stored row-major in a flat slice and immutable once built.
//   - New ingests caller rows and enforces the full structural contract:
//     squareness, symmetry within epsilon, ~0 diagonal, no negatives, no NaN.
//   - FromPoints reduces raw coordinates plus a Metric callback to the same
//     matrix form (Euclidean by default).
//   - Submatrix restricts a matrix to a subset of indices — the landmark
//     shrink step.
//
// Why
//
//	Vietoris–Rips construction and MaxMin subsampling both consume pairwise
//	distances and both fail in confusing ways on malformed input. Validating
//	once, at ingestion, lets the algorithmic packages trust shape and
//	symmetry unconditionally in their inner loops.
//
// Numeric policy
//
//	Symmetry and diagonal checks use a configurable epsilon
//	(DefaultEpsilon). +Inf off-diagonal entries are rejected unless
//	WithAllowInf is supplied; +Inf then means "farther than every scale of
//	interest". NaN and -Inf are always rejected.
//
// Errors
//
//	All structural violations match ErrInvalidMatrix via errors.Is, with a
//	specific sentinel (ErrNotSquare, ErrAsymmetric, ErrNonZeroDiagonal,
//	ErrNegativeDistance, ErrNaN) narrowing the cause. Index violations
//	return ErrOutOfRange.
//
// Complexity
//
//	Validation is O(n²) time; storage is O(n²) memory. At/Dist are O(1).
package distmat
