// Package landmark implements greedy farthest-point (MaxMin) subsampling
// over a distance matrix, with covering-radius tracking per prefix.
//
// What
//
//   - MaxMin(m, seed) selects all n points in farthest-first order: the
//     next landmark is always the point farthest from everything chosen so
//     far. Alongside the permutation it reports Radii, where Radii[k] is
//     the covering radius of the first k landmarks — the maximum over all
//     points of the distance to the nearest selected landmark. Radii[0] is
//     +Inf (nothing selected), Radii[n] is 0, and the sequence is
//     non-increasing throughout.
//   - Sequence.Prefix(k) returns the first k indices, shaped for
//     distmat.Submatrix: pick a prefix whose covering radius is small
//     enough, shrink the matrix, and hand the result to a downstream
//     filtration builder.
//
// The package depends only on distmat. It never inspects complexes,
// filtrations or diagrams.
//
// Determinism
//
//	The argmax over the nearest-distance array breaks ties toward the
//	smallest index, so the selected order is a pure function of the matrix
//	and the seed.
//
// Complexity
//
//	O(n²) time, O(n) extra memory: each of the n selection steps scans the
//	nearest array once and relaxes it against one matrix row.
//
// Errors
//
//   - ErrInvalidSeed — seed outside [0, n).
//   - distmat's validation errors surface unchanged from the matrix.
package landmark
