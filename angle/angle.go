package angle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gmath"
)

// Radian tags an Angle whose stored value is in radians.
type Radian struct{}

// Degree tags an Angle whose stored value is in degrees.
type Degree struct{}

// Unit is the closed set of angle unit tags. Being a type-set constraint,
// it cannot be implemented outside this package.
type Unit interface {
	Radian | Degree
}

// Angle is a single scalar whose interpretation is fixed by its unit tag U.
// Conversion between units is a value transform performed exactly once, by
// To or by the cross-unit comparison helpers; it is never a
// reinterpretation of the stored scalar.
//
// Angle values are immutable: every operation returns a new value.
type Angle[T gmath.Float, U Unit] struct {
	value T
}

// Convenience aliases for the common instantiations.
type (
	Rad32 = Angle[float32, Radian]
	Rad64 = Angle[float64, Radian]
	Deg32 = Angle[float32, Degree]
	Deg64 = Angle[float64, Degree]
)

// Rad constructs a radian-tagged angle from a raw scalar.
func Rad[T gmath.Float](v T) Angle[T, Radian] { return Angle[T, Radian]{value: v} }

// Deg constructs a degree-tagged angle from a raw scalar.
func Deg[T gmath.Float](v T) Angle[T, Degree] { return Angle[T, Degree]{value: v} }

// Pi returns the radian angle π.
func Pi[T gmath.Float]() Angle[T, Radian] { return Rad(T(math.Pi)) }

// isDegree reports whether the unit tag U is Degree.
func isDegree[U Unit]() bool {
	_, ok := any(*new(U)).(Degree)

	return ok
}

// To converts a to the unit To, multiplying by π/180 or 180/π exactly once.
// Converting to the angle's own unit returns the value unchanged.
//
//	r := angle.To[angle.Radian](angle.Deg(180.0)) // π rad
func To[Dst Unit, T gmath.Float, Src Unit](a Angle[T, Src]) Angle[T, Dst] {
	if isDegree[Src]() == isDegree[Dst]() {
		return Angle[T, Dst]{value: a.value}
	}
	if isDegree[Src]() {
		return Angle[T, Dst]{value: a.value * T(math.Pi/180)}
	}

	return Angle[T, Dst]{value: a.value * T(180/math.Pi)}
}

// Value returns the raw scalar, interpreted in the angle's own unit.
func (a Angle[T, U]) Value() T { return a.value }

// Radians returns the scalar value expressed in radians.
func (a Angle[T, U]) Radians() T { return To[Radian](a).value }

// Degrees returns the scalar value expressed in degrees.
func (a Angle[T, U]) Degrees() T { return To[Degree](a).value }

// Normalized reduces the angle modulo one full turn (2π for radians, 360
// for degrees) using the floating remainder. Like math.Mod, the result
// keeps the sign of the input: Normalized of a negative angle is negative
// (or zero), lying in (-turn, 0]. Callers wanting a strictly non-negative
// angle can add one turn to a negative result.
func (a Angle[T, U]) Normalized() Angle[T, U] {
	turn := T(2 * math.Pi)
	if isDegree[U]() {
		turn = 360
	}

	return Angle[T, U]{value: gmath.Mod(a.value, turn)}
}

// Add returns a + b. Both operands share one unit by construction.
func (a Angle[T, U]) Add(b Angle[T, U]) Angle[T, U] { return Angle[T, U]{value: a.value + b.value} }

// Sub returns a - b.
func (a Angle[T, U]) Sub(b Angle[T, U]) Angle[T, U] { return Angle[T, U]{value: a.value - b.value} }

// Mul returns the elementwise product a·b.
func (a Angle[T, U]) Mul(b Angle[T, U]) Angle[T, U] { return Angle[T, U]{value: a.value * b.value} }

// Div returns a/b. Division by a zero angle yields ±Inf or NaN per IEEE
// convention; no error is signaled.
func (a Angle[T, U]) Div(b Angle[T, U]) Angle[T, U] { return Angle[T, U]{value: a.value / b.value} }

// Mod returns the floating remainder of a/b, with math.Mod's sign rule.
func (a Angle[T, U]) Mod(b Angle[T, U]) Angle[T, U] {
	return Angle[T, U]{value: gmath.Mod(a.value, b.value)}
}

// Neg returns -a.
func (a Angle[T, U]) Neg() Angle[T, U] { return Angle[T, U]{value: -a.value} }

// Scale returns the angle multiplied by the scalar s.
func (a Angle[T, U]) Scale(s T) Angle[T, U] { return Angle[T, U]{value: a.value * s} }

// Equal reports whether a and b denote the same angle, converting b to a's
// unit before comparing. The comparison is exact; use ApproxEqual for a
// tolerance.
func Equal[T gmath.Float, U1, U2 Unit](a Angle[T, U1], b Angle[T, U2]) bool {
	return a.value == To[U1](b).value
}

// Less reports whether a denotes a smaller angle than b, converting b to
// a's unit before comparing.
func Less[T gmath.Float, U1, U2 Unit](a Angle[T, U1], b Angle[T, U2]) bool {
	return a.value < To[U1](b).value
}

// ApproxEqual reports whether a and b denote the same angle within eps,
// converting b to a's unit before comparing.
func ApproxEqual[T gmath.Float, U1, U2 Unit](a Angle[T, U1], b Angle[T, U2], eps T) bool {
	return gmath.Abs(a.value-To[U1](b).value) <= eps
}

// String renders the angle with its unit suffix, for diagnostics only.
func (a Angle[T, U]) String() string {
	if isDegree[U]() {
		return fmt.Sprintf("%v°", a.value)
	}

	return fmt.Sprintf("%v rad", a.value)
}
