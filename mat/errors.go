// Package mat: sentinel error set. All operations that can fail return
// these sentinels, and tests match them via errors.Is. No operation panics
// on user-triggered conditions; panics are reserved for programmer errors
// in option constructors.

package mat

import "errors"

var (
	// ErrOutOfRange indicates that a row, column or flat index passed to a
	// bounds-checked accessor (At, AtIndex) is outside the matrix's shape.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrSingular indicates that Inverse was asked to invert a matrix whose
	// determinant is zero (or within the configured epsilon of zero). The
	// matrix returned alongside it is the zero matrix, never a grid of
	// Infs/NaNs.
	ErrSingular = errors.New("mat: matrix is singular")

	// ErrDegenerate indicates that LookAt could not build an orthonormal
	// basis because the up vector is parallel (within the configured
	// epsilon) to the view direction.
	ErrDegenerate = errors.New("mat: degenerate basis")
)
