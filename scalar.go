package gmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint shared by every gmath type. All angle,
// vector, matrix and geometry types are generic over it.
type Float interface {
	constraints.Float
}

// The wrappers below exist so generic code (and float32 callers) can use the
// math package without casting at every call site. Each converts through
// float64, computes, and converts back.

// Sqrt returns the square root of v.
func Sqrt[T Float](v T) T { return T(math.Sqrt(float64(v))) }

// Abs returns the absolute value of v.
func Abs[T Float](v T) T { return T(math.Abs(float64(v))) }

// Mod returns the floating-point remainder of a/b. The result keeps the
// sign of a, as math.Mod does.
func Mod[T Float](a, b T) T { return T(math.Mod(float64(a), float64(b))) }

// Sin returns the sine of v (v in radians).
func Sin[T Float](v T) T { return T(math.Sin(float64(v))) }

// Cos returns the cosine of v (v in radians).
func Cos[T Float](v T) T { return T(math.Cos(float64(v))) }

// Tan returns the tangent of v (v in radians).
func Tan[T Float](v T) T { return T(math.Tan(float64(v))) }

// Asin returns the arcsine, in radians, of v.
func Asin[T Float](v T) T { return T(math.Asin(float64(v))) }

// Acos returns the arccosine, in radians, of v.
func Acos[T Float](v T) T { return T(math.Acos(float64(v))) }

// Atan returns the arctangent, in radians, of v.
func Atan[T Float](v T) T { return T(math.Atan(float64(v))) }

// Atanh returns the inverse hyperbolic tangent of v.
func Atanh[T Float](v T) T { return T(math.Atanh(float64(v))) }

// Atan2 returns the arctangent of y/x, in radians, using the signs of the
// two to determine the quadrant of the result.
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }
