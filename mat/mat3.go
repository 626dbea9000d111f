package mat

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/geom"
	"github.com/katalvlaran/gmath/vec"
)

// Mat3 is a 3×3 matrix stored row-major in a flat array. It doubles as
// the homogeneous 2D transform type produced by Translate2D, Scale2D,
// Rotate2D and Shear2D. Direct indexing (m[i]) is the unchecked fast
// path; At and AtIndex are bounds-checked.
type Mat3[T gmath.Float] [9]T

// Identity3 returns the 3×3 identity matrix.
func Identity3[T gmath.Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rows returns the row count, 3.
func (Mat3[T]) Rows() int { return 3 }

// Cols returns the column count, 3.
func (Mat3[T]) Cols() int { return 3 }

// Size returns the element count, 9.
func (Mat3[T]) Size() int { return 9 }

// At returns the element at (r, c), or ErrOutOfRange.
func (m Mat3[T]) At(r, c int) (T, error) { return atChecked(m[:], 3, 3, r, c) }

// AtIndex returns the element at the flat row-major index i, or
// ErrOutOfRange.
func (m Mat3[T]) AtIndex(i int) (T, error) { return atIndexChecked(m[:], i) }

// Row returns row i as a vector. i must be in [0, 3).
func (m Mat3[T]) Row(i int) vec.Vec3[T] { return vec.Vec3[T]{m[i*3], m[i*3+1], m[i*3+2]} }

// Col returns column i as a vector. i must be in [0, 3).
func (m Mat3[T]) Col(i int) vec.Vec3[T] { return vec.Vec3[T]{m[i], m[3+i], m[6+i]} }

// Transposed returns the matrix reflected over its diagonal.
func (m Mat3[T]) Transposed() Mat3[T] {
	var out Mat3[T]
	transposeInto(out[:], m[:], 3, 3)

	return out
}

// Mul returns the matrix product m × o. Under the row-vector convention
// this composes transforms left to right: v × a.Mul(b) applies a first.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	mulInto(out[:], m[:], o[:], 3, 3, 3)

	return out
}

// MulMat3x2 returns the 3×2 product m × o.
func (m Mat3[T]) MulMat3x2(o Mat3x2[T]) Mat3x2[T] {
	var out Mat3x2[T]
	mulInto(out[:], m[:], o[:], 3, 3, 2)

	return out
}

// Minor returns the 2×2 submatrix left after deleting row r and column c.
// Both indices must be in [0, 3).
func (m Mat3[T]) Minor(row, col int) Mat2[T] {
	var out Mat2[T]
	i := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			out[i] = m[r*3+c]
			i++
		}
	}

	return out
}

// Cofactor returns (-1)^(r+c) times the determinant of the minor at
// (r, c).
func (m Mat3[T]) Cofactor(r, c int) T { return cofactorSign[T](r, c) * m.Minor(r, c).Det() }

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3[T]) Det() T {
	var det T
	for c := 0; c < 3; c++ {
		det += m[c] * m.Cofactor(0, c)
	}

	return det
}

// Inverse returns the inverse matrix via the adjugate. When the
// determinant's magnitude is within the configured epsilon of zero it
// returns the zero matrix and ErrSingular.
func (m Mat3[T]) Inverse(opts ...Option) (Mat3[T], error) {
	o := gatherOptions(opts...)
	det := m.Det()
	if float64(gmath.Abs(det)) <= o.eps {
		return Mat3[T]{}, ErrSingular
	}

	var inv Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			// Adjugate: the cofactor matrix transposed.
			inv[c*3+r] = m.Cofactor(r, c) / det
		}
	}

	return inv, nil
}

// TransformVec returns v × m under the row-vector convention.
func (m Mat3[T]) TransformVec(v vec.Vec3[T]) vec.Vec3[T] {
	var out vec.Vec3[T]
	for c := 0; c < 3; c++ {
		out[c] = v[0]*m[c] + v[1]*m[3+c] + v[2]*m[6+c]
	}

	return out
}

// TransformPoint applies the transform to a 2D position using the
// homogeneous coordinate (x, y, 1). It assumes an affine matrix (last
// column (0, 0, 1)); projective matrices need TransformVec and an
// explicit divide.
func (m Mat3[T]) TransformPoint(p geom.Point2[T]) geom.Point2[T] {
	h := m.TransformVec(p.Vec().XY1())

	return geom.Point2[T]{h[0], h[1]}
}

// String renders the matrix for diagnostics:
// mat3((1, 2, 3), (4, 5, 6), (7, 8, 9)).
func (m Mat3[T]) String() string { return formatMatrix(3, 3, m[:]) }
