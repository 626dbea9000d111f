package vec

import "github.com/katalvlaran/gmath"

// Vec4 is an ordered quadruple of scalars, most often a homogeneous
// coordinate or an RGBA color. The zero value is the zero vector.
type Vec4[T gmath.Float] [4]T

// V4 constructs a Vec4 from its four components.
func V4[T gmath.Float](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// Splat4 constructs a Vec4 with every component set to v.
func Splat4[T gmath.Float](v T) Vec4[T] { return Vec4[T]{v, v, v, v} }

// V4Of extends a Vec3 with a fourth component.
func V4Of[T gmath.Float](v Vec3[T], w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// X returns the first component.
func (v Vec4[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec4[T]) Z() T { return v[2] }

// W returns the fourth component.
func (v Vec4[T]) W() T { return v[3] }

// R returns the first component under the color naming.
func (v Vec4[T]) R() T { return v[0] }

// G returns the second component under the color naming.
func (v Vec4[T]) G() T { return v[1] }

// B returns the third component under the color naming.
func (v Vec4[T]) B() T { return v[2] }

// A returns the fourth component under the color naming.
func (v Vec4[T]) A() T { return v[3] }

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// AddScalar returns v with s added to every component.
func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{v[0] + s, v[1] + s, v[2] + s, v[3] + s}
}

// SubScalar returns v with s subtracted from every component.
func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{v[0] - s, v[1] - s, v[2] - s, v[3] - s}
}

// Scale returns v multiplied by the scalar s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Div returns v divided by the scalar s.
func (v Vec4[T]) Div(s T) Vec4[T] {
	return Vec4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

// Sum returns the sum of the components.
func (v Vec4[T]) Sum() T { return v[0] + v[1] + v[2] + v[3] }

// Mean returns the arithmetic mean of the components.
func (v Vec4[T]) Mean() T { return v.Sum() / 4 }

// LengthSquared returns the squared Euclidean norm.
func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec4[T]) Length() T { return gmath.Sqrt(v.LengthSquared()) }

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v has zero length.
func (v Vec4[T]) Normalized() Vec4[T] {
	length := v.Length()
	if length == 0 {
		return Vec4[T]{}
	}

	return v.Div(length)
}

// Lerp linearly interpolates between v and o: t=0 returns v, t=1 returns o.
func (v Vec4[T]) Lerp(o Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
		v[3] + (o[3]-v[3])*t,
	}
}
