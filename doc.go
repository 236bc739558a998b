// Package tdakit is an in-memory engine for persistent homology of
// point-cloud data — from simplicial primitives to reduced persistence
// diagrams.
//
// 🚀 What is tdakit?
//
//	A single-machine computational-topology toolkit that brings together:
//		• Simplicial primitives: complexes, filtrations, stable per-dimension indexing
//		• Vietoris–Rips construction: radius- and dimension-bounded clique expansion
//		• Finite-field arithmetic: drop-in prime moduli for boundary algebra
//		• Persistence reduction: pivot-based column reduction with representative cycles
//		• Landmark subsampling: MaxMin farthest-point selection with covering radii
//		• Diagram consumers: Betti counts, bar lifetimes, summary statistics
//
// ✨ Why choose tdakit?
//
//   - Deterministic – stable filtration orders, reproducible pairings
//   - Honest errors – sentinel errors for every caller-input violation, no panics
//   - Synchronous core – optional parallelism only where the math permits it
//
// Everything is organized under small, focused subpackages:
//
//	distmat/     — validated square symmetric distance matrices
//	zp/          — arithmetic over a prime field Z/pZ
//	simplex/     — simplices, complexes, and filtrations
//	rips/        — Vietoris–Rips filtration builder
//	persistence/ — boundary matrices, reduction, pairs and cycles
//	landmark/    — greedy MaxMin subsampling
//	diagram/     — read-side helpers over reduced diagrams
//
// Typical pipeline:
//
//	m, _ := distmat.New(rows)
//	f, _ := rips.Build(m, rips.WithMaxRadius(2.0), rips.WithMaxDim(2))
//	gf2, _ := zp.New(2)
//	dgm, _ := persistence.Run(f, gf2)
//
//	go get github.com/mirvel/tdakit
package tdakit
