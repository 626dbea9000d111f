package vec

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/angle"
)

// Vec2 is an ordered pair of scalars. The zero value is the zero vector.
type Vec2[T gmath.Float] [2]T

// V2 constructs a Vec2 from its two components.
func V2[T gmath.Float](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// Splat2 constructs a Vec2 with both components set to v.
func Splat2[T gmath.Float](v T) Vec2[T] { return Vec2[T]{v, v} }

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// R returns the first component under the color naming.
func (v Vec2[T]) R() T { return v[0] }

// G returns the second component under the color naming.
func (v Vec2[T]) G() T { return v[1] }

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + o[0], v[1] + o[1]} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - o[0], v[1] - o[1]} }

// AddScalar returns v with s added to every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] { return Vec2[T]{v[0] + s, v[1] + s} }

// SubScalar returns v with s subtracted from every component.
func (v Vec2[T]) SubScalar(s T) Vec2[T] { return Vec2[T]{v[0] - s, v[1] - s} }

// Scale returns v multiplied by the scalar s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v[0] * s, v[1] * s} }

// Div returns v divided by the scalar s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v[0] / s, v[1] / s} }

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v[0]*o[0] + v[1]*o[1] }

// Cross returns the scalar 2D cross product: the z-component of the 3D
// cross product of the two vectors extended with z = 0.
func (v Vec2[T]) Cross(o Vec2[T]) T { return v[0]*o[1] - v[1]*o[0] }

// Sum returns the sum of the components.
func (v Vec2[T]) Sum() T { return v[0] + v[1] }

// Mean returns the arithmetic mean of the components.
func (v Vec2[T]) Mean() T { return v.Sum() / 2 }

// LengthSquared returns the squared Euclidean norm.
func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec2[T]) Length() T { return gmath.Sqrt(v.LengthSquared()) }

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v has zero length.
func (v Vec2[T]) Normalized() Vec2[T] {
	length := v.Length()
	if length == 0 {
		return Vec2[T]{}
	}

	return v.Div(length)
}

// AngleTo returns the unsigned angle between v and o. When either vector
// has zero length the result is NaN.
func (v Vec2[T]) AngleTo(o Vec2[T]) angle.Angle[T, angle.Radian] {
	return angle.Acos(v.Dot(o) / gmath.Sqrt(v.LengthSquared()*o.LengthSquared()))
}

// Lerp linearly interpolates between v and o: t=0 returns v, t=1 returns o.
func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] {
	return Vec2[T]{v[0] + (o[0]-v[0])*t, v[1] + (o[1]-v[1])*t}
}
