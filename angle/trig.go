package angle

import "github.com/katalvlaran/gmath"

// Trigonometric accessors always evaluate in radians; when the stored unit
// is degrees the value is converted first.

// Sin returns the sine of the angle.
func (a Angle[T, U]) Sin() T { return gmath.Sin(a.Radians()) }

// Cos returns the cosine of the angle.
func (a Angle[T, U]) Cos() T { return gmath.Cos(a.Radians()) }

// Tan returns the tangent of the angle.
func (a Angle[T, U]) Tan() T { return gmath.Tan(a.Radians()) }

// Inverse-trig factories construct radian-tagged angles, mirroring the
// math package's radian results.

// Asin returns the radian angle whose sine is v.
func Asin[T gmath.Float](v T) Angle[T, Radian] { return Rad(gmath.Asin(v)) }

// Acos returns the radian angle whose cosine is v.
func Acos[T gmath.Float](v T) Angle[T, Radian] { return Rad(gmath.Acos(v)) }

// Atan returns the radian angle whose tangent is v.
func Atan[T gmath.Float](v T) Angle[T, Radian] { return Rad(gmath.Atan(v)) }

// Atanh returns the radian angle that is the inverse hyperbolic tangent of v.
func Atanh[T gmath.Float](v T) Angle[T, Radian] { return Rad(gmath.Atanh(v)) }

// Atan2 returns the radian angle of the point (x, y), using the signs of
// both coordinates to determine the quadrant.
func Atan2[T gmath.Float](y, x T) Angle[T, Radian] { return Rad(gmath.Atan2(y, x)) }
