package simplex

import "errors"

var (
	// ErrMalformedSimplex indicates an empty vertex tuple, a negative
	// vertex ID, or a repeated vertex.
	ErrMalformedSimplex = errors.New("simplex: malformed simplex")

	// ErrFaceMissing indicates Add was called while some facet of the
	// simplex is absent from the complex.
	ErrFaceMissing = errors.New("simplex: face missing from complex")

	// ErrDuplicateSimplex indicates Add was called with a vertex set that
	// is already stored.
	ErrDuplicateSimplex = errors.New("simplex: simplex already present")

	// ErrInvalidFiltration indicates a birth-value monotonicity violation:
	// a simplex younger than one of its faces requires birth(face) ≤
	// birth(coface).
	ErrInvalidFiltration = errors.New("simplex: filtration monotonicity violated")

	// ErrCapacityExceeded indicates the capacity-bounded storage strategy
	// was asked to store a vertex or dimension beyond its declared bounds.
	ErrCapacityExceeded = errors.New("simplex: declared capacity exceeded")

	// ErrIndexOutOfRange indicates a (dimension, index) lookup outside the
	// stored range.
	ErrIndexOutOfRange = errors.New("simplex: index out of range")
)
