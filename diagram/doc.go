// Package diagram provides read-side helpers over persistence diagrams:
// Betti numbers at a scale, finite-bar lifetimes and summary statistics.
//
// What
//
//   - Betti counts the classes of one dimension alive at a given scale:
//     born at or before it, not yet dead. Infinite bars are recognized by
//     their flag, never by comparing against a numeric sentinel.
//   - Lifetimes collects the finite bar lengths of one dimension.
//   - Summarize condenses a dimension into counts plus mean, median and
//     max lifetime.
//
// The package only reads completed diagrams; it never touches reducers or
// filtrations.
//
// Errors
//
//   - ErrNilDiagram — nil diagram input.
package diagram
