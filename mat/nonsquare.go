package mat

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/vec"
)

// Mat2x3 is a 2-row, 3-column matrix stored row-major. Square-only
// operations (determinant, inverse, cofactors) do not exist on it, by
// construction.
type Mat2x3[T gmath.Float] [6]T

// Rows returns the row count, 2.
func (Mat2x3[T]) Rows() int { return 2 }

// Cols returns the column count, 3.
func (Mat2x3[T]) Cols() int { return 3 }

// Size returns the element count, 6.
func (Mat2x3[T]) Size() int { return 6 }

// At returns the element at (r, c), or ErrOutOfRange.
func (m Mat2x3[T]) At(r, c int) (T, error) { return atChecked(m[:], 2, 3, r, c) }

// AtIndex returns the element at the flat row-major index i, or
// ErrOutOfRange.
func (m Mat2x3[T]) AtIndex(i int) (T, error) { return atIndexChecked(m[:], i) }

// Row returns row i as a vector. i must be in [0, 2).
func (m Mat2x3[T]) Row(i int) vec.Vec3[T] { return vec.Vec3[T]{m[i*3], m[i*3+1], m[i*3+2]} }

// Col returns column i as a vector. i must be in [0, 3).
func (m Mat2x3[T]) Col(i int) vec.Vec2[T] { return vec.Vec2[T]{m[i], m[3+i]} }

// Transposed returns the 3×2 transpose.
func (m Mat2x3[T]) Transposed() Mat3x2[T] {
	var out Mat3x2[T]
	transposeInto(out[:], m[:], 2, 3)

	return out
}

// Mul returns the 2×2 product m × o; the inner dimensions (3) conform by
// construction.
func (m Mat2x3[T]) Mul(o Mat3x2[T]) Mat2[T] {
	var out Mat2[T]
	mulInto(out[:], m[:], o[:], 2, 3, 2)

	return out
}

// MulMat3 returns the 2×3 product m × o.
func (m Mat2x3[T]) MulMat3(o Mat3[T]) Mat2x3[T] {
	var out Mat2x3[T]
	mulInto(out[:], m[:], o[:], 2, 3, 3)

	return out
}

// TransformVec returns v × m under the row-vector convention: a 2-vector
// in, a 3-vector out.
func (m Mat2x3[T]) TransformVec(v vec.Vec2[T]) vec.Vec3[T] {
	var out vec.Vec3[T]
	for c := 0; c < 3; c++ {
		out[c] = v[0]*m[c] + v[1]*m[3+c]
	}

	return out
}

// String renders the matrix for diagnostics: mat2x3((...), (...)).
func (m Mat2x3[T]) String() string { return formatMatrix(2, 3, m[:]) }

// Mat3x2 is a 3-row, 2-column matrix stored row-major.
type Mat3x2[T gmath.Float] [6]T

// Rows returns the row count, 3.
func (Mat3x2[T]) Rows() int { return 3 }

// Cols returns the column count, 2.
func (Mat3x2[T]) Cols() int { return 2 }

// Size returns the element count, 6.
func (Mat3x2[T]) Size() int { return 6 }

// At returns the element at (r, c), or ErrOutOfRange.
func (m Mat3x2[T]) At(r, c int) (T, error) { return atChecked(m[:], 3, 2, r, c) }

// AtIndex returns the element at the flat row-major index i, or
// ErrOutOfRange.
func (m Mat3x2[T]) AtIndex(i int) (T, error) { return atIndexChecked(m[:], i) }

// Row returns row i as a vector. i must be in [0, 3).
func (m Mat3x2[T]) Row(i int) vec.Vec2[T] { return vec.Vec2[T]{m[i*2], m[i*2+1]} }

// Col returns column i as a vector. i must be in [0, 2).
func (m Mat3x2[T]) Col(i int) vec.Vec3[T] { return vec.Vec3[T]{m[i], m[2+i], m[4+i]} }

// Transposed returns the 2×3 transpose.
func (m Mat3x2[T]) Transposed() Mat2x3[T] {
	var out Mat2x3[T]
	transposeInto(out[:], m[:], 3, 2)

	return out
}

// Mul returns the 3×3 product m × o; the inner dimensions (2) conform by
// construction.
func (m Mat3x2[T]) Mul(o Mat2x3[T]) Mat3[T] {
	var out Mat3[T]
	mulInto(out[:], m[:], o[:], 3, 2, 3)

	return out
}

// MulMat2 returns the 3×2 product m × o.
func (m Mat3x2[T]) MulMat2(o Mat2[T]) Mat3x2[T] {
	var out Mat3x2[T]
	mulInto(out[:], m[:], o[:], 3, 2, 2)

	return out
}

// TransformVec returns v × m under the row-vector convention: a 3-vector
// in, a 2-vector out.
func (m Mat3x2[T]) TransformVec(v vec.Vec3[T]) vec.Vec2[T] {
	var out vec.Vec2[T]
	for c := 0; c < 2; c++ {
		out[c] = v[0]*m[c] + v[1]*m[2+c] + v[2]*m[4+c]
	}

	return out
}

// String renders the matrix for diagnostics: mat3x2((...), (...), (...)).
func (m Mat3x2[T]) String() string { return formatMatrix(3, 2, m[:]) }
