package mat

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/vec"
)

// Mat2 is a 2×2 matrix stored row-major in a flat array. Direct indexing
// (m[i]) is the unchecked fast path; At and AtIndex are bounds-checked.
type Mat2[T gmath.Float] [4]T

// Identity2 returns the 2×2 identity matrix.
func Identity2[T gmath.Float]() Mat2[T] {
	return Mat2[T]{
		1, 0,
		0, 1,
	}
}

// Rows returns the row count, 2.
func (Mat2[T]) Rows() int { return 2 }

// Cols returns the column count, 2.
func (Mat2[T]) Cols() int { return 2 }

// Size returns the element count, 4.
func (Mat2[T]) Size() int { return 4 }

// At returns the element at (r, c), or ErrOutOfRange.
func (m Mat2[T]) At(r, c int) (T, error) { return atChecked(m[:], 2, 2, r, c) }

// AtIndex returns the element at the flat row-major index i, or
// ErrOutOfRange.
func (m Mat2[T]) AtIndex(i int) (T, error) { return atIndexChecked(m[:], i) }

// Row returns row i as a vector. i must be in [0, 2).
func (m Mat2[T]) Row(i int) vec.Vec2[T] { return vec.Vec2[T]{m[i*2], m[i*2+1]} }

// Col returns column i as a vector. i must be in [0, 2).
func (m Mat2[T]) Col(i int) vec.Vec2[T] { return vec.Vec2[T]{m[i], m[2+i]} }

// Transposed returns the matrix reflected over its diagonal.
func (m Mat2[T]) Transposed() Mat2[T] {
	var out Mat2[T]
	transposeInto(out[:], m[:], 2, 2)

	return out
}

// Mul returns the matrix product m × o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	var out Mat2[T]
	mulInto(out[:], m[:], o[:], 2, 2, 2)

	return out
}

// MulMat2x3 returns the 2×3 product m × o.
func (m Mat2[T]) MulMat2x3(o Mat2x3[T]) Mat2x3[T] {
	var out Mat2x3[T]
	mulInto(out[:], m[:], o[:], 2, 2, 3)

	return out
}

// Minor returns the 1×1 minor left after deleting row r and column c:
// the diagonally opposite element. Both indices must be in [0, 2).
func (m Mat2[T]) Minor(r, c int) T { return m[(1-r)*2+(1-c)] }

// Cofactor returns (-1)^(r+c) times the minor at (r, c).
func (m Mat2[T]) Cofactor(r, c int) T { return cofactorSign[T](r, c) * m.Minor(r, c) }

// Det returns the determinant ad - bc.
func (m Mat2[T]) Det() T { return m[0]*m[3] - m[1]*m[2] }

// Inverse returns the inverse matrix via the adjugate. When the
// determinant's magnitude is within the configured epsilon of zero it
// returns the zero matrix and ErrSingular.
func (m Mat2[T]) Inverse(opts ...Option) (Mat2[T], error) {
	o := gatherOptions(opts...)
	det := m.Det()
	if float64(gmath.Abs(det)) <= o.eps {
		return Mat2[T]{}, ErrSingular
	}

	var inv Mat2[T]
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			// Adjugate: the cofactor matrix transposed.
			inv[c*2+r] = m.Cofactor(r, c) / det
		}
	}

	return inv, nil
}

// TransformVec returns v × m under the row-vector convention.
func (m Mat2[T]) TransformVec(v vec.Vec2[T]) vec.Vec2[T] {
	return vec.Vec2[T]{
		v[0]*m[0] + v[1]*m[2],
		v[0]*m[1] + v[1]*m[3],
	}
}

// String renders the matrix for diagnostics: mat2((a, b), (c, d)).
func (m Mat2[T]) String() string { return formatMatrix(2, 2, m[:]) }
