package mat

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/geom"
	"github.com/katalvlaran/gmath/vec"
)

// Mat4 is a 4×4 matrix stored row-major in a flat array. It is the
// homogeneous 3D transform type produced by Translate3D, the rotation
// factories, Perspective, LookAt and Orthographic. Direct indexing (m[i])
// is the unchecked fast path; At and AtIndex are bounds-checked.
type Mat4[T gmath.Float] [16]T

// Identity4 returns the 4×4 identity matrix.
func Identity4[T gmath.Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rows returns the row count, 4.
func (Mat4[T]) Rows() int { return 4 }

// Cols returns the column count, 4.
func (Mat4[T]) Cols() int { return 4 }

// Size returns the element count, 16.
func (Mat4[T]) Size() int { return 16 }

// At returns the element at (r, c), or ErrOutOfRange.
func (m Mat4[T]) At(r, c int) (T, error) { return atChecked(m[:], 4, 4, r, c) }

// AtIndex returns the element at the flat row-major index i, or
// ErrOutOfRange.
func (m Mat4[T]) AtIndex(i int) (T, error) { return atIndexChecked(m[:], i) }

// Row returns row i as a vector. i must be in [0, 4).
func (m Mat4[T]) Row(i int) vec.Vec4[T] {
	return vec.Vec4[T]{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Col returns column i as a vector. i must be in [0, 4).
func (m Mat4[T]) Col(i int) vec.Vec4[T] {
	return vec.Vec4[T]{m[i], m[4+i], m[8+i], m[12+i]}
}

// Transposed returns the matrix reflected over its diagonal.
func (m Mat4[T]) Transposed() Mat4[T] {
	var out Mat4[T]
	transposeInto(out[:], m[:], 4, 4)

	return out
}

// Mul returns the matrix product m × o. Under the row-vector convention
// this composes transforms left to right: v × a.Mul(b) applies a first.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	mulInto(out[:], m[:], o[:], 4, 4, 4)

	return out
}

// Minor returns the 3×3 submatrix left after deleting row r and column c.
// Both indices must be in [0, 4).
func (m Mat4[T]) Minor(row, col int) Mat3[T] {
	var out Mat3[T]
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			out[i] = m[r*4+c]
			i++
		}
	}

	return out
}

// Cofactor returns (-1)^(r+c) times the determinant of the minor at
// (r, c).
func (m Mat4[T]) Cofactor(r, c int) T { return cofactorSign[T](r, c) * m.Minor(r, c).Det() }

// Det returns the determinant by cofactor expansion along the first row.
// Cost grows factorially with matrix order; at 4×4 that is still cheap,
// and this package goes no larger.
func (m Mat4[T]) Det() T {
	var det T
	for c := 0; c < 4; c++ {
		det += m[c] * m.Cofactor(0, c)
	}

	return det
}

// Inverse returns the inverse matrix via the adjugate. When the
// determinant's magnitude is within the configured epsilon of zero it
// returns the zero matrix and ErrSingular.
func (m Mat4[T]) Inverse(opts ...Option) (Mat4[T], error) {
	o := gatherOptions(opts...)
	det := m.Det()
	if float64(gmath.Abs(det)) <= o.eps {
		return Mat4[T]{}, ErrSingular
	}

	var inv Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Adjugate: the cofactor matrix transposed.
			inv[c*4+r] = m.Cofactor(r, c) / det
		}
	}

	return inv, nil
}

// TransformVec returns v × m under the row-vector convention.
func (m Mat4[T]) TransformVec(v vec.Vec4[T]) vec.Vec4[T] {
	var out vec.Vec4[T]
	for c := 0; c < 4; c++ {
		out[c] = v[0]*m[c] + v[1]*m[4+c] + v[2]*m[8+c] + v[3]*m[12+c]
	}

	return out
}

// TransformPoint applies the transform to a 3D position using the
// homogeneous coordinate (x, y, z, 1). It assumes an affine matrix (last
// column (0, 0, 0, 1)); projective matrices need TransformVec and an
// explicit perspective divide.
func (m Mat4[T]) TransformPoint(p geom.Point3[T]) geom.Point3[T] {
	h := m.TransformVec(p.Vec().XYZ1())

	return geom.Point3[T]{h[0], h[1], h[2]}
}

// String renders the matrix for diagnostics.
func (m Mat4[T]) String() string { return formatMatrix(4, 4, m[:]) }
