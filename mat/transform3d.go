package mat

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/angle"
	"github.com/katalvlaran/gmath/geom"
	"github.com/katalvlaran/gmath/vec"
)

// 3D transform factories. All matrices are right-handed and follow the
// row-vector convention: apply with v × M, compose left to right with
// Mul, translation components in the bottom row.

// Translate3D returns the homogeneous 3D translation by v.
func Translate3D[T gmath.Float](v vec.Vec3[T]) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v[0], v[1], v[2], 1,
	}
}

// Scale3D returns the homogeneous 3D scale by v's components.
func Scale3D[T gmath.Float](v vec.Vec3[T]) Mat4[T] {
	return Mat4[T]{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

// RotateX returns the rotation by a about the x axis.
func RotateX[T gmath.Float, U angle.Unit](a angle.Angle[T, U]) Mat4[T] {
	sin, cos := a.Sin(), a.Cos()

	return Mat4[T]{
		1, 0, 0, 0,
		0, cos, sin, 0,
		0, -sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns the rotation by a about the y axis.
func RotateY[T gmath.Float, U angle.Unit](a angle.Angle[T, U]) Mat4[T] {
	sin, cos := a.Sin(), a.Cos()

	return Mat4[T]{
		cos, 0, -sin, 0,
		0, 1, 0, 0,
		sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns the rotation by a about the z axis.
func RotateZ[T gmath.Float, U angle.Unit](a angle.Angle[T, U]) Mat4[T] {
	sin, cos := a.Sin(), a.Cos()

	return Mat4[T]{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a right-handed perspective projection from a
// horizontal field of view: the vertical field of view is derived through
// the aspect ratio (width/height) and handed to PerspectiveV.
func Perspective[T gmath.Float, U angle.Unit](hfov angle.Angle[T, U], aspect, near, far T) Mat4[T] {
	vfov := angle.Atan(hfov.Scale(0.5).Tan() / aspect).Scale(2)

	return PerspectiveV(vfov, aspect, near, far)
}

// PerspectiveV returns a right-handed perspective projection from a
// vertical field of view, mapping the view frustum between near and far
// onto clip space with z in [-1, 1].
func PerspectiveV[T gmath.Float, U angle.Unit](vfov angle.Angle[T, U], aspect, near, far T) Mat4[T] {
	tanHalf := vfov.Scale(0.5).Tan()
	negRange := near - far

	return Mat4[T]{
		1 / (aspect * tanHalf), 0, 0, 0,
		0, 1 / tanHalf, 0, 0,
		0, 0, (far + near) / negRange, -1,
		0, 0, (2 * far * near) / negRange, 0,
	}
}

// LookAt returns the right-handed view matrix placing the camera at eye,
// looking toward center, with up fixing the roll. It builds the
// orthonormal basis via cross products; when up is parallel to the view
// direction (cross-product norm within the configured epsilon of zero)
// no basis exists and it returns the zero matrix and ErrDegenerate.
func LookAt[T gmath.Float](eye, center geom.Point3[T], up vec.Vec3[T], opts ...Option) (Mat4[T], error) {
	o := gatherOptions(opts...)

	zAxis := center.VectorTo(eye).Normalized()
	cross := up.Cross(zAxis)
	if float64(cross.LengthSquared()) <= o.eps*o.eps {
		return Mat4[T]{}, ErrDegenerate
	}
	xAxis := cross.Normalized()
	yAxis := zAxis.Cross(xAxis)

	e := eye.Vec()

	return Mat4[T]{
		xAxis[0], yAxis[0], zAxis[0], 0,
		xAxis[1], yAxis[1], zAxis[1], 0,
		xAxis[2], yAxis[2], zAxis[2], 0,
		-xAxis.Dot(e), -yAxis.Dot(e), -zAxis.Dot(e), 1,
	}, nil
}

// Orthographic returns the projection mapping rect onto x, y in [-1, 1]
// and the near..far slab onto z in [-1, 1]. The y scale uses top minus
// bottom, so a screen-space rect (top < bottom) flips y, which is the
// usual fit for pixel coordinates.
func Orthographic[T gmath.Float](rect geom.Rect[T], near, far T) Mat4[T] {
	rl := rect.Right - rect.Left
	tb := rect.Top - rect.Bottom
	fn := far - near

	return Mat4[T]{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(rect.Right + rect.Left) / rl, -(rect.Top + rect.Bottom) / tb, -(far + near) / fn, 1,
	}
}
