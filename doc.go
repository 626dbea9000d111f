// Package gmath is a compile-time, dimension-safe linear-algebra toolkit
// for graphics and geometry code: unit-tagged angles, fixed-size vectors,
// fixed-size matrices with transform factories, and 2D geometric primitives.
//
// 🚀 What is gmath?
//
//	A small, pure-Go library that brings together:
//		• Angles: radian/degree tagged scalars with explicit, single-step conversion
//		• Vectors: Vec2/Vec3/Vec4 with dot, cross, length, normalize & swizzles
//		• Matrices: Mat2..Mat4 (plus 2×3/3×2) with transforms, determinant & inverse
//		• Geometry: points, sizes and rectangles with interval arithmetic
//
// ✨ Why choose gmath?
//
//   - Dimension safety – shape mismatches are compile errors, never runtime surprises
//   - Value semantics – every operation returns a new value; nothing mutates at a distance
//   - Pure Go – no cgo, no hidden deps
//   - Explicit failures – singular inverses and degenerate bases return sentinel errors
//
// Everything is organized under four subpackages:
//
//	angle/ — unit-tagged Angle type, trigonometry and inverse-trig factories
//	vec/   — fixed-length vectors and their algebraic & geometric operations
//	geom/  — Point, Size and Rectangle coordinate containers
//	mat/   — fixed-shape matrices, transform factories, determinant & inverse
//
// Transforms follow the row-vector convention: a vector is transformed as
// v × M, and matrices compose left to right in the order they are applied.
//
// The root package holds only the shared scalar constraint and generic
// wrappers over the math package, so float32 code reads as cleanly as
// float64 code.
package gmath
