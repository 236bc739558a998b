// Package persistence builds boundary matrices over a prime field and
// reduces them into persistence pairs with representative cycles.
//
// What
//
//   - NewBoundary assembles, per dimension d, the signed incidence columns
//     of a filtration: the entry for the facet omitting the i-th stored
//     vertex is (−1)^i mapped into the field (over GF(2) every nonzero
//     entry is 1). Columns follow the filtration order; rows are ranked by
//     the filtration order of the dimension below.
//   - NewReducer wraps a boundary matrix for a matching field and Reduce
//     runs the standard persistence reduction: process columns left to
//     right; while a column's low (highest-ranked nonzero row) is already
//     claimed by an earlier column, subtract the claimant scaled by
//     entry_j[low]/entry_i[low]; a column either zeroes out (a birth) or
//     stabilizes on an unclaimed low (a death paired with that row's
//     simplex). The low table is injective after reduction.
//   - Every (dim, index) appears as the birth of exactly one pair — finite
//     or infinite — and as the death of at most one, so
//     2·finite + infinite = total simplex count.
//
// Representative cycles
//
//	A finite pair exposes the stabilized death column: a chain of
//	pair-dimension simplices whose boundary realizes the dying class. An
//	infinite pair exposes the accumulated reduction combination (the V
//	column) of its zeroed birth column. Both are Chains over the
//	configured field, addressable via Diagram.Cycle.
//
// Determinism
//
//	When a low is contested, the subtrahend is always the unique earlier
//	column recorded in the low table — the earliest stabilized claimant
//	wins the claim and keeps it. Left-to-right order makes the whole
//	reduction, and therefore every pairing, deterministic for any field.
//
// Idempotence
//
//	Reduce mutates the reducer's private copy of the columns and is a
//	fixed point: running it again performs no column operation (every
//	nonzero column already owns a unique low) and rebuilds the identical
//	diagram. The source filtration is never touched.
//
// Concurrency
//
//	Raw column assembly is parallel (columns are independent); the
//	reduction pass itself is inherently sequential in filtration order.
//	A completed Diagram is immutable and safe for concurrent reads.
//
// Errors
//
//   - ErrNilFiltration / ErrNilField — constructor input guards.
//   - ErrFieldMismatch — reducer field differs from the matrix's field.
//   - ErrIndexOutOfRange — malformed pair or column lookups.
package persistence
