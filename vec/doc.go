// Package vec provides fixed-length numeric vectors: Vec2, Vec3 and Vec4.
//
// The vec package provides:
//
//   - Element-wise arithmetic (Add, Sub, Scale, Div, AddScalar, SubScalar)
//     closed over the vector's own dimension.
//   - Geometric operations: Dot, Cross (scalar at two dimensions, a
//     perpendicular vector at three), Length, Normalized, AngleTo, Lerp.
//   - Swizzle methods that select, reorder and extend components; a method
//     only exists where every selected index is in range, so out-of-range
//     swizzles are compile errors.
//
// Each vector is a plain Go array type, so values are comparable with ==,
// constructible from composite literals, and indexable directly (v[0]) as
// the caller-verifies-bounds fast path.
//
// Degenerate-input policy: Normalized of the zero vector returns the zero
// vector (guarding the division), while AngleTo against a zero vector
// yields NaN, consistent with garbage-in, garbage-out geometry.
package vec
