package geom

import (
	"github.com/katalvlaran/gmath"
	"github.com/katalvlaran/gmath/vec"
)

// Point2 is a 2D position. Unlike a vector it denotes a location, not a
// displacement; subtracting two points yields a vector.
type Point2[T gmath.Float] [2]T

// Pt2 constructs a Point2 from its coordinates.
func Pt2[T gmath.Float](x, y T) Point2[T] { return Point2[T]{x, y} }

// PointFromVec2 converts a vector into the position it points at.
func PointFromVec2[T gmath.Float](v vec.Vec2[T]) Point2[T] { return Point2[T](v) }

// X returns the horizontal coordinate.
func (p Point2[T]) X() T { return p[0] }

// Y returns the vertical coordinate.
func (p Point2[T]) Y() T { return p[1] }

// Add returns the point translated by o's coordinates.
func (p Point2[T]) Add(o Point2[T]) Point2[T] { return Point2[T]{p[0] + o[0], p[1] + o[1]} }

// Sub returns the point translated by -o's coordinates.
func (p Point2[T]) Sub(o Point2[T]) Point2[T] { return Point2[T]{p[0] - o[0], p[1] - o[1]} }

// AddSize returns the point translated by a size's extents.
func (p Point2[T]) AddSize(s Size2[T]) Point2[T] { return Point2[T]{p[0] + s[0], p[1] + s[1]} }

// SubSize returns the point translated back by a size's extents.
func (p Point2[T]) SubSize(s Size2[T]) Point2[T] { return Point2[T]{p[0] - s[0], p[1] - s[1]} }

// Scale returns the point with both coordinates multiplied by s.
func (p Point2[T]) Scale(s T) Point2[T] { return Point2[T]{p[0] * s, p[1] * s} }

// Div returns the point with both coordinates divided by s.
func (p Point2[T]) Div(s T) Point2[T] { return Point2[T]{p[0] / s, p[1] / s} }

// VectorTo returns the displacement from p to o.
func (p Point2[T]) VectorTo(o Point2[T]) vec.Vec2[T] {
	return vec.Vec2[T]{o[0] - p[0], o[1] - p[1]}
}

// Vec returns the point's coordinates as a vector from the origin.
func (p Point2[T]) Vec() vec.Vec2[T] { return vec.Vec2[T](p) }

// Point3 is a 3D position.
type Point3[T gmath.Float] [3]T

// Pt3 constructs a Point3 from its coordinates.
func Pt3[T gmath.Float](x, y, z T) Point3[T] { return Point3[T]{x, y, z} }

// PointFromVec3 converts a vector into the position it points at.
func PointFromVec3[T gmath.Float](v vec.Vec3[T]) Point3[T] { return Point3[T](v) }

// X returns the first coordinate.
func (p Point3[T]) X() T { return p[0] }

// Y returns the second coordinate.
func (p Point3[T]) Y() T { return p[1] }

// Z returns the third coordinate.
func (p Point3[T]) Z() T { return p[2] }

// Add returns the point translated by o's coordinates.
func (p Point3[T]) Add(o Point3[T]) Point3[T] {
	return Point3[T]{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}

// Sub returns the point translated by -o's coordinates.
func (p Point3[T]) Sub(o Point3[T]) Point3[T] {
	return Point3[T]{p[0] - o[0], p[1] - o[1], p[2] - o[2]}
}

// AddSize returns the point translated by a size's extents.
func (p Point3[T]) AddSize(s Size3[T]) Point3[T] {
	return Point3[T]{p[0] + s[0], p[1] + s[1], p[2] + s[2]}
}

// SubSize returns the point translated back by a size's extents.
func (p Point3[T]) SubSize(s Size3[T]) Point3[T] {
	return Point3[T]{p[0] - s[0], p[1] - s[1], p[2] - s[2]}
}

// Scale returns the point with every coordinate multiplied by s.
func (p Point3[T]) Scale(s T) Point3[T] { return Point3[T]{p[0] * s, p[1] * s, p[2] * s} }

// Div returns the point with every coordinate divided by s.
func (p Point3[T]) Div(s T) Point3[T] { return Point3[T]{p[0] / s, p[1] / s, p[2] / s} }

// VectorTo returns the displacement from p to o.
func (p Point3[T]) VectorTo(o Point3[T]) vec.Vec3[T] {
	return vec.Vec3[T]{o[0] - p[0], o[1] - p[1], o[2] - p[2]}
}

// Vec returns the point's coordinates as a vector from the origin.
func (p Point3[T]) Vec() vec.Vec3[T] { return vec.Vec3[T](p) }
