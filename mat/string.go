package mat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gmath"
)

// formatMatrix renders flat row-major storage as the diagnostic form
// shared by every String method: mat{R}( for square shapes,
// mat{R}x{C}( otherwise, then each row as (v0, v1, ...), rows
// comma-separated, closed with ). The format is for diagnostics only and
// is not parsed back.
func formatMatrix[T gmath.Float](rows, cols int, data []T) string {
	var b strings.Builder
	if rows == cols {
		fmt.Fprintf(&b, "mat%d(", rows)
	} else {
		fmt.Fprintf(&b, "mat%dx%d(", rows, cols)
	}
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", data[r*cols+c])
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')

	return b.String()
}
