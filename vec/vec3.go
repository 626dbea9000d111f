package vec

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/angle"
)

// Vec3 is an ordered triple of scalars. The zero value is the zero vector.
type Vec3[T gmath.Float] [3]T

// V3 constructs a Vec3 from its three components.
func V3[T gmath.Float](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// Splat3 constructs a Vec3 with every component set to v.
func Splat3[T gmath.Float](v T) Vec3[T] { return Vec3[T]{v, v, v} }

// V3Of extends a Vec2 with a third component.
func V3Of[T gmath.Float](v Vec2[T], z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// R returns the first component under the color naming.
func (v Vec3[T]) R() T { return v[0] }

// G returns the second component under the color naming.
func (v Vec3[T]) G() T { return v[1] }

// B returns the third component under the color naming.
func (v Vec3[T]) B() T { return v[2] }

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// AddScalar returns v with s added to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] { return Vec3[T]{v[0] + s, v[1] + s, v[2] + s} }

// SubScalar returns v with s subtracted from every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] { return Vec3[T]{v[0] - s, v[1] - s, v[2] - s} }

// Scale returns v multiplied by the scalar s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }

// Div returns v divided by the scalar s.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v[0] / s, v[1] / s, v[2] / s} }

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns the vector perpendicular to v and o, following the
// right-hand rule.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Sum returns the sum of the components.
func (v Vec3[T]) Sum() T { return v[0] + v[1] + v[2] }

// Mean returns the arithmetic mean of the components.
func (v Vec3[T]) Mean() T { return v.Sum() / 3 }

// LengthSquared returns the squared Euclidean norm.
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec3[T]) Length() T { return gmath.Sqrt(v.LengthSquared()) }

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v has zero length.
func (v Vec3[T]) Normalized() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}

	return v.Div(length)
}

// AngleTo returns the unsigned angle between v and o. When either vector
// has zero length the result is NaN.
func (v Vec3[T]) AngleTo(o Vec3[T]) angle.Angle[T, angle.Radian] {
	return angle.Acos(v.Dot(o) / gmath.Sqrt(v.LengthSquared()*o.LengthSquared()))
}

// Lerp linearly interpolates between v and o: t=0 returns v, t=1 returns o.
func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
	}
}
