package vec_test

import (
	"fmt"

	"github.com/katalvlaran/gmath/vec"
)

// ExampleVec2_Dot walks the basic 2D products: the dot product, the
// scalar 2D cross product, and scaling.
func ExampleVec2_Dot() {
	v1 := vec.V2(4.0, 5.0)
	v2 := vec.V2(3.0, 2.0)

	fmt.Println(v1.Dot(v2))
	fmt.Println(v1.Cross(v2))
	fmt.Println(v2.Scale(2))
	// Output:
	// 22
	// -7
	// [6 4]
}

// ExampleVec3_Cross builds the third basis axis from the first two.
func ExampleVec3_Cross() {
	x := vec.V3(1.0, 0.0, 0.0)
	y := vec.V3(0.0, 1.0, 0.0)

	fmt.Println(x.Cross(y))
	// Output:
	// [0 0 1]
}

// ExampleVec2_XY01 lifts a plane point into homogeneous space in one
// step: z padded with 0, w with 1.
func ExampleVec2_XY01() {
	fmt.Println(vec.V2(2.0, 3.0).XY01())
	// Output:
	// [2 3 0 1]
}
