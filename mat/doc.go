// Package mat provides fixed-shape, row-major matrices: Mat2, Mat3 and
// Mat4, plus the non-square Mat2x3 and Mat3x2.
//
// The mat package provides:
//
//   - Shape-safe multiplication: Mul is defined only where the inner
//     dimensions conform (Mat3x2 × Mat2x3 → Mat3, and so on), so a shape
//     mismatch is a compile error, never a runtime check.
//   - Minor, Cofactor, Det and Inverse for the square matrices, by
//     cofactor expansion: adequate for the ≤4×4 sizes this package
//     targets, with no LU/decomposition machinery.
//   - Transform factories (Translate2D/3D, Scale2D/3D, Rotate2D,
//     RotateX/Y/Z, Shear2D, Perspective, LookAt, Orthographic) and the
//     TransformVec/TransformPoint application helpers.
//   - A diagnostic String rendering: mat3((1, 2, 3), (4, 5, 6), (7, 8, 9)).
//
// Terminology is kept strict: Minor(r, c) is the submatrix with row r and
// column c deleted; Cofactor(r, c) is the scalar (-1)^(r+c) · det(minor).
// Det expands along the first row; Inverse divides the adjugate (the
// transposed cofactor matrix) by the determinant.
//
// Transforms follow the row-vector convention: a vector is transformed as
// v × M, translation components live in the bottom row, and matrices
// compose left to right in the order they are applied. The perspective and
// look-at derivations are right-handed.
//
// Failure policy follows the rest of gmath: singular inverses and
// degenerate look-at bases return sentinel errors (ErrSingular,
// ErrDegenerate) matched with errors.Is; the bounds-checked accessors
// return ErrOutOfRange; direct indexing (m[i]) is the caller-verifies
// fast path.
package mat
