// Package vec_test contains unit tests for the fixed-length vectors:
// construction, element-wise algebra, geometric operations and swizzles.
package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gmath/angle"
	"github.com/katalvlaran/gmath/vec"
)

const eps = 1e-12

func TestConstructors(t *testing.T) {
	require.Equal(t, vec.Vec2[float64]{2, 5}, vec.V2(2.0, 5.0))
	require.Equal(t, vec.Vec2[float64]{2, 2}, vec.Splat2(2.0))
	require.Equal(t, vec.Vec3[float64]{1, 2, 3}, vec.V3(1.0, 2.0, 3.0))
	require.Equal(t, vec.Vec3[float64]{3, 2, 1}, vec.V3Of(vec.V2(3.0, 2.0), 1.0))
	require.Equal(t, vec.Vec4[float64]{3, 2, 1, 0}, vec.V4Of(vec.V3(3.0, 2.0, 1.0), 0.0))

	// The zero value is the zero vector.
	var zero vec.Vec2[float64]
	require.Equal(t, 0.0, zero.X())
	require.Equal(t, 0.0, zero.Y())
}

func TestNamedAccessors(t *testing.T) {
	v := vec.V4(1.0, 2.0, 3.0, 4.0)
	require.Equal(t, 1.0, v.X())
	require.Equal(t, 2.0, v.Y())
	require.Equal(t, 3.0, v.Z())
	require.Equal(t, 4.0, v.W())

	// Color aliases read the same storage.
	require.Equal(t, 1.0, v.R())
	require.Equal(t, 2.0, v.G())
	require.Equal(t, 3.0, v.B())
	require.Equal(t, 4.0, v.A())
}

func TestElementwiseOperators(t *testing.T) {
	v1, v2 := vec.V2(4.0, 5.0), vec.V2(3.0, 2.0)
	require.Equal(t, vec.V2(7.0, 7.0), v1.Add(v2))
	require.Equal(t, vec.V2(1.0, 3.0), v1.Sub(v2))
	require.Equal(t, vec.V2(6.0, 4.0), v2.Scale(2))
	require.Equal(t, vec.V2(1.5, 1.0), v2.Div(2))
	require.Equal(t, vec.V2(5.0, 6.0), v1.AddScalar(1))
	require.Equal(t, vec.V2(3.0, 4.0), v1.SubScalar(1))
}

func TestDotAndCross2(t *testing.T) {
	v1, v2 := vec.V2(4.0, 5.0), vec.V2(3.0, 2.0)
	require.Equal(t, 22.0, v1.Dot(v2))
	require.Equal(t, -7.0, v1.Cross(v2))
	require.Equal(t, 7.0, v2.Cross(v1))
}

func TestCross3(t *testing.T) {
	x, y := vec.V3(1.0, 0.0, 0.0), vec.V3(0.0, 1.0, 0.0)
	require.Equal(t, vec.V3(0.0, 0.0, 1.0), x.Cross(y))
	require.Equal(t, vec.V3(0.0, 0.0, -1.0), y.Cross(x))

	// Cross with itself vanishes.
	require.Equal(t, vec.Vec3[float64]{}, x.Cross(x))
}

func TestReductions(t *testing.T) {
	v := vec.V2(6.0, 7.0)
	require.Equal(t, 13.0, v.Sum())
	require.Equal(t, 6.5, v.Mean())
	require.Equal(t, 85.0, v.LengthSquared())
	require.Equal(t, math.Sqrt(85.0), v.Length())
}

func TestNormalized(t *testing.T) {
	v := vec.V3(3.0, 0.0, 4.0)
	n := v.Normalized()
	require.InDelta(t, 1.0, n.Length(), eps)
	require.InDelta(t, 0.6, n.X(), eps)
	require.InDelta(t, 0.8, n.Z(), eps)

	// Zero length normalizes to the zero vector, not NaN.
	require.Equal(t, vec.Vec2[float64]{}, vec.Vec2[float64]{}.Normalized())
	require.Equal(t, 0.0, vec.Vec2[float64]{}.Length())
}

func TestAngleTo(t *testing.T) {
	a := vec.V2(1.0, 0.0).AngleTo(vec.V2(0.0, 1.0))
	require.True(t, angle.ApproxEqual(a, angle.Deg(90.0), eps))

	b := vec.V3(1.0, 0.0, 0.0).AngleTo(vec.V3(-1.0, 0.0, 0.0))
	require.True(t, angle.ApproxEqual(b, angle.Pi[float64](), eps))

	// Degenerate input propagates NaN, by policy.
	nan := vec.V2(1.0, 0.0).AngleTo(vec.Vec2[float64]{})
	require.True(t, math.IsNaN(nan.Value()))
}

func TestLerp(t *testing.T) {
	a, b := vec.V2(0.0, 0.0), vec.V2(10.0, -4.0)
	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, vec.V2(5.0, -2.0), a.Lerp(b, 0.5))
}

func TestSwizzleVec2(t *testing.T) {
	v := vec.V2(2.0, 3.0)
	require.Equal(t, vec.V2(2.0, 2.0), v.XX())
	require.Equal(t, vec.V2(3.0, 3.0), v.YY())
	require.Equal(t, vec.V2(3.0, 2.0), v.YX())
	require.Equal(t, vec.V3(2.0, 3.0, 0.0), v.XY0())
	require.Equal(t, vec.V3(2.0, 3.0, 1.0), v.XY1())
	require.Equal(t, vec.V4(2.0, 3.0, 0.0, 1.0), v.XY01())

	// Constant-leading selections.
	require.Equal(t, vec.V2(0.0, 1.0), v.ZeroOne())
	require.Equal(t, vec.V4(0.0, 1.0, 2.0, 3.0), v.ZeroOneXY())
}

func TestSwizzleVec3(t *testing.T) {
	v := vec.V3(1.0, 2.0, 3.0)
	require.Equal(t, vec.V2(1.0, 2.0), v.XY())
	require.Equal(t, vec.V2(1.0, 3.0), v.XZ())
	require.Equal(t, vec.V2(2.0, 3.0), v.YZ())
	require.Equal(t, vec.V3(3.0, 2.0, 1.0), v.ZYX())
	require.Equal(t, vec.V3(1.0, 1.0, 1.0), v.XXX())
	require.Equal(t, vec.V4(1.0, 2.0, 3.0, 0.0), v.XYZ0())
	require.Equal(t, vec.V4(1.0, 2.0, 3.0, 1.0), v.XYZ1())
}

func TestSwizzleVec4(t *testing.T) {
	v := vec.V4(1.0, 2.0, 3.0, 4.0)
	require.Equal(t, vec.V2(1.0, 2.0), v.XY())
	require.Equal(t, vec.V3(1.0, 2.0, 3.0), v.XYZ())
	require.Equal(t, vec.V4(4.0, 3.0, 2.0, 1.0), v.WZYX())
}

func TestFloat32Instantiation(t *testing.T) {
	v := vec.V3[float32](1, 2, 2)
	require.Equal(t, float32(3), v.Length())
	require.Equal(t, float32(9), v.LengthSquared())
}
