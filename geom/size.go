package geom

import "github.com/katalvlaran/gmath"

// Size2 is a 2D extent: width then height.
type Size2[T gmath.Float] [2]T

// Sz2 constructs a Size2 from width and height.
func Sz2[T gmath.Float](w, h T) Size2[T] { return Size2[T]{w, h} }

// Width returns the horizontal extent.
func (s Size2[T]) Width() T { return s[0] }

// Height returns the vertical extent.
func (s Size2[T]) Height() T { return s[1] }

// Add returns the component-wise sum of two sizes.
func (s Size2[T]) Add(o Size2[T]) Size2[T] { return Size2[T]{s[0] + o[0], s[1] + o[1]} }

// Sub returns the component-wise difference of two sizes.
func (s Size2[T]) Sub(o Size2[T]) Size2[T] { return Size2[T]{s[0] - o[0], s[1] - o[1]} }

// Scale returns the size with both extents multiplied by v.
func (s Size2[T]) Scale(v T) Size2[T] { return Size2[T]{s[0] * v, s[1] * v} }

// Div returns the size with both extents divided by v.
func (s Size2[T]) Div(v T) Size2[T] { return Size2[T]{s[0] / v, s[1] / v} }

// Size3 is a 3D extent: width, height, then depth.
type Size3[T gmath.Float] [3]T

// Sz3 constructs a Size3 from width, height and depth.
func Sz3[T gmath.Float](w, h, d T) Size3[T] { return Size3[T]{w, h, d} }

// Width returns the extent along the first axis.
func (s Size3[T]) Width() T { return s[0] }

// Height returns the extent along the second axis.
func (s Size3[T]) Height() T { return s[1] }

// Depth returns the extent along the third axis.
func (s Size3[T]) Depth() T { return s[2] }

// Add returns the component-wise sum of two sizes.
func (s Size3[T]) Add(o Size3[T]) Size3[T] {
	return Size3[T]{s[0] + o[0], s[1] + o[1], s[2] + o[2]}
}

// Sub returns the component-wise difference of two sizes.
func (s Size3[T]) Sub(o Size3[T]) Size3[T] {
	return Size3[T]{s[0] - o[0], s[1] - o[1], s[2] - o[2]}
}

// Scale returns the size with every extent multiplied by v.
func (s Size3[T]) Scale(v T) Size3[T] { return Size3[T]{s[0] * v, s[1] * v, s[2] * v} }

// Div returns the size with every extent divided by v.
func (s Size3[T]) Div(v T) Size3[T] { return Size3[T]{s[0] / v, s[1] / v, s[2] / v} }
