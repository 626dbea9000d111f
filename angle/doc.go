// Package angle provides a unit-tagged angle type for radians and degrees.
//
// The angle package provides:
//
//   - Angle[T, U]: one scalar tagged with its unit at the type level, so a
//     radian value can never be mistaken for a degree value.
//   - To: the single conversion point between units (×π/180 or ×180/π).
//   - Trigonometric accessors (Sin, Cos, Tan) that always evaluate in
//     radians, converting implicitly when the stored unit is degrees.
//   - Inverse-trig factories (Asin, Acos, Atan, Atan2, Atanh) that always
//     construct radian-tagged angles.
//   - Cross-unit comparison helpers (Equal, Less, ApproxEqual) that convert
//     the right operand to the left operand's unit before comparing.
//
// Arithmetic between two angles is closed over a single unit: the method
// signatures only accept an operand of the same unit, so mixing units in
// arithmetic is a compile error. Only construction and To convert units.
//
// Division or modulo by a zero angle follows IEEE floating-point
// convention (±Inf or NaN); it is value-domain behavior, not an error.
package angle
