package mat

import "github.com/katalvlaran/gmath"

// Shared kernels over flat row-major storage. Every exported matrix method
// with a shape-generic core funnels through these, so the loop order
// (row → column → inner) is identical across all shapes.

// mulInto writes a×b into dst, where a is rows×inner, b is inner×cols and
// dst is rows×cols. Callers guarantee the slice lengths match the shapes.
func mulInto[T gmath.Float](dst, a, b []T, rows, inner, cols int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var sum T
			for k := 0; k < inner; k++ {
				sum += a[r*inner+k] * b[k*cols+c]
			}
			dst[r*cols+c] = sum
		}
	}
}

// transposeInto writes the transpose of src (rows×cols) into dst
// (cols×rows).
func transposeInto[T gmath.Float](dst, src []T, rows, cols int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dst[c*rows+r] = src[r*cols+c]
		}
	}
}

// atChecked is the bounds-checked (row, column) read shared by every At.
func atChecked[T gmath.Float](data []T, rows, cols, r, c int) (T, error) {
	if r < 0 || r >= rows || c < 0 || c >= cols {
		var zero T

		return zero, ErrOutOfRange
	}

	return data[r*cols+c], nil
}

// atIndexChecked is the bounds-checked flat read shared by every AtIndex.
func atIndexChecked[T gmath.Float](data []T, i int) (T, error) {
	if i < 0 || i >= len(data) {
		var zero T

		return zero, ErrOutOfRange
	}

	return data[i], nil
}

// cofactorSign returns (-1)^(r+c).
func cofactorSign[T gmath.Float](r, c int) T {
	if (r+c)%2 == 0 {
		return 1
	}

	return -1
}
