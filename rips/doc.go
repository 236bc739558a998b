// Package rips builds Vietoris–Rips filtrations from pairwise distances by
// radius-bounded clique expansion.
//
// What
//
//   - Build consumes a validated distmat.Matrix plus a maximum radius and a
//     maximum dimension, and produces a simplex.Filtration:
//     1. every point enters as a vertex at birth 0;
//     2. every pair within the radius enters as an edge at its distance;
//     3. for dimension d = 2..k, every (d-1)-simplex σ is extended by each
//     vertex v > max(σ) that lies within the radius of all of σ, at birth
//     max(birth(σ), max distance from v into σ).
//   - BuildRows is the convenience entry that validates raw rows first, so
//     malformed input surfaces as the distmat sentinel family.
//
// Why
//
//	The Rips complex is the workhorse input to persistence: its births are
//	the maximum pairwise distance among a simplex's vertices, so the
//	resulting filtration is monotone by construction and needs no
//	after-the-fact repair.
//
// Determinism
//
//	Cliques are enumerated canonically (extension vertex strictly greater
//	than every vertex of σ), so each vertex set is produced exactly once
//	and insertion order — hence per-dimension indexing — is reproducible,
//	with or without workers.
//
// Parallelism
//
//	The candidate scan of each dimension level is embarrassingly parallel
//	across (σ, v) pairs; WithWorkers fans it out over an errgroup with a
//	barrier between levels (dimension d+1 needs all of dimension d).
//	Insertion itself stays sequential to keep indices stable.
//
// Complexity
//
//	Worst case exponential in the dimension bound (clique counting); this
//	is the dominant cost of the pipeline on dense clouds, and exactly why
//	the radius bound and landmark subsampling exist.
//
// Errors
//
//   - ErrNilMatrix — Build received a nil matrix.
//   - ErrOptionViolation — negative/NaN radius, negative dimension bound or
//     worker count.
//   - distmat.ErrInvalidMatrix family — BuildRows ingestion failures.
package rips
