package mat

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/angle"
	"github.com/katalvlaran/gmath/geom"
	"github.com/katalvlaran/gmath/vec"
)

// 2D transform factories. Every matrix follows the row-vector convention:
// apply with v × M (TransformVec/TransformPoint), compose left to right
// with Mul, translation components in the bottom row.

// Translate2D returns the homogeneous 2D translation by v.
func Translate2D[T gmath.Float](v vec.Vec2[T]) Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		v[0], v[1], 1,
	}
}

// Scale2D returns the homogeneous 2D scale by the size's extents.
func Scale2D[T gmath.Float](s geom.Size2[T]) Mat3[T] {
	return Mat3[T]{
		s.Width(), 0, 0,
		0, s.Height(), 0,
		0, 0, 1,
	}
}

// Rotate2D returns the homogeneous counter-clockwise rotation by a.
func Rotate2D[T gmath.Float, U angle.Unit](a angle.Angle[T, U]) Mat3[T] {
	sin, cos := a.Sin(), a.Cos()

	return Mat3[T]{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
}

// Shear2D returns the homogeneous 2D shear: x gains s.X per unit of y,
// and y gains s.Y per unit of x.
func Shear2D[T gmath.Float](s vec.Vec2[T]) Mat3[T] {
	return Mat3[T]{
		1, s[1], 0,
		s[0], 1, 0,
		0, 0, 1,
	}
}
