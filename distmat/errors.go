package distmat

import (
	"errors"
	"fmt"
)

// ErrInvalidMatrix is the base sentinel for every structural violation of
// the distance-matrix contract. The specific sentinels below wrap it, so
// callers may match either the family or the exact cause via errors.Is.
var ErrInvalidMatrix = errors.New("distmat: invalid distance matrix")

var (
	// ErrNotSquare indicates the input rows do not form an n×n matrix.
	ErrNotSquare = fmt.Errorf("%w: not square", ErrInvalidMatrix)

	// ErrAsymmetric indicates |d[i][j] − d[j][i]| exceeds epsilon somewhere.
	ErrAsymmetric = fmt.Errorf("%w: not symmetric within eps", ErrInvalidMatrix)

	// ErrNonZeroDiagonal indicates |d[i][i]| exceeds epsilon somewhere.
	ErrNonZeroDiagonal = fmt.Errorf("%w: diagonal not zero within eps", ErrInvalidMatrix)

	// ErrNegativeDistance indicates a negative off-diagonal entry.
	ErrNegativeDistance = fmt.Errorf("%w: negative distance", ErrInvalidMatrix)

	// ErrNaN indicates a NaN (or disallowed infinite) entry.
	ErrNaN = fmt.Errorf("%w: NaN or disallowed Inf entry", ErrInvalidMatrix)
)

// ErrOutOfRange indicates a row or column index outside [0, n).
var ErrOutOfRange = errors.New("distmat: index out of range")

// ErrEmptyInput indicates zero points were supplied.
var ErrEmptyInput = errors.New("distmat: input must contain at least one point")
