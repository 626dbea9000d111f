package geom_test

import (
	"fmt"

	"github.com/katalvlaran/gmath/geom"
)

// ExampleRectOf lays out a 100×100 box, slides it, and intersects the two
// placements.
func ExampleRectOf() {
	r := geom.RectOf(geom.Pt2(100.0, 100.0), geom.Sz2(100.0, 100.0))
	moved := r.Offset(geom.Sz2(50.0, 50.0))
	overlap := r.Intersection(moved)

	fmt.Println(overlap.TopLeft(), overlap.Size())
	fmt.Println(overlap.Valid())
	// Output:
	// [150 150] [50 50]
	// true
}

// ExamplePoint2_VectorTo measures the displacement between two points as
// a vector, ready for length or direction queries.
func ExamplePoint2_VectorTo() {
	p := geom.Pt2(1.0, 1.0)
	q := geom.Pt2(4.0, 5.0)

	fmt.Println(p.VectorTo(q).Length())
	// Output:
	// 5
}
