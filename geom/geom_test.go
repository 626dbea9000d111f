// Package geom_test contains unit tests for the coordinate containers:
// points, sizes and rectangle interval arithmetic.
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gmath/geom"
	"github.com/katalvlaran/gmath/vec"
)

func TestPoint2Arithmetic(t *testing.T) {
	p, q := geom.Pt2(1.0, 2.0), geom.Pt2(10.0, 20.0)
	require.Equal(t, geom.Pt2(11.0, 22.0), p.Add(q))
	require.Equal(t, geom.Pt2(9.0, 18.0), q.Sub(p))
	require.Equal(t, geom.Pt2(2.0, 4.0), p.Scale(2))
	require.Equal(t, geom.Pt2(5.0, 10.0), q.Div(2))
	require.Equal(t, geom.Pt2(4.0, 6.0), p.AddSize(geom.Sz2(3.0, 4.0)))
	require.Equal(t, geom.Pt2(7.0, 16.0), q.SubSize(geom.Sz2(3.0, 4.0)))
}

func TestPointVectorBridge(t *testing.T) {
	p, q := geom.Pt2(1.0, 1.0), geom.Pt2(4.0, 5.0)
	require.Equal(t, vec.V2(3.0, 4.0), p.VectorTo(q))
	require.Equal(t, 5.0, p.VectorTo(q).Length())
	require.Equal(t, vec.V2(1.0, 1.0), p.Vec())
	require.Equal(t, p, geom.PointFromVec2(vec.V2(1.0, 1.0)))

	e := geom.Pt3(0.0, 0.0, 5.0)
	require.Equal(t, vec.V3(0.0, 0.0, 5.0), e.Vec())
	require.Equal(t, vec.V3(0.0, 0.0, -5.0), e.VectorTo(geom.Pt3(0.0, 0.0, 0.0)))
}

func TestSizeArithmetic(t *testing.T) {
	s := geom.Sz2(100.0, 50.0)
	require.Equal(t, 100.0, s.Width())
	require.Equal(t, 50.0, s.Height())
	require.Equal(t, geom.Sz2(110.0, 70.0), s.Add(geom.Sz2(10.0, 20.0)))
	require.Equal(t, geom.Sz2(90.0, 30.0), s.Sub(geom.Sz2(10.0, 20.0)))
	require.Equal(t, geom.Sz2(200.0, 100.0), s.Scale(2))
	require.Equal(t, geom.Sz2(50.0, 25.0), s.Div(2))

	d := geom.Sz3(1.0, 2.0, 3.0)
	require.Equal(t, 3.0, d.Depth())
}

func TestRectConstruction(t *testing.T) {
	r := geom.RectOf(geom.Pt2(100.0, 100.0), geom.Sz2(100.0, 100.0))
	require.Equal(t, 100.0, r.Top)
	require.Equal(t, 100.0, r.Left)
	require.Equal(t, 200.0, r.Bottom)
	require.Equal(t, 200.0, r.Right)
	require.Equal(t, geom.Sz2(100.0, 100.0), r.Size())
	require.Equal(t, geom.Pt2(100.0, 100.0), r.TopLeft())
	require.Equal(t, geom.Pt2(200.0, 100.0), r.TopRight())
	require.Equal(t, geom.Pt2(100.0, 200.0), r.BottomLeft())
	require.Equal(t, geom.Pt2(200.0, 200.0), r.BottomRight())
	require.True(t, r.Valid())
}

func TestRectOffsetAndIntersection(t *testing.T) {
	r := geom.RectOf(geom.Pt2(100.0, 100.0), geom.Sz2(100.0, 100.0))
	moved := r.Offset(geom.Sz2(50.0, 50.0))
	require.Equal(t, geom.R(150.0, 150.0, 250.0, 250.0), moved)

	require.True(t, r.Intersects(moved))
	require.Equal(t, geom.R(150.0, 150.0, 200.0, 200.0), r.Intersection(moved))

	// Disjoint rectangles produce an invalid intersection.
	far := r.Offset(geom.Sz2(500.0, 0.0))
	require.False(t, r.Intersects(far))
	require.False(t, r.Intersection(far).Valid())
}

func TestRectInsetAndPad(t *testing.T) {
	r := geom.RectOf(geom.Pt2(100.0, 100.0), geom.Sz2(100.0, 100.0))

	padded := r.Pad(geom.Sz2(20.0, 40.0))
	require.Equal(t, geom.R(60.0, 80.0, 240.0, 220.0), padded)

	// Inset undoes Pad.
	require.Equal(t, r, padded.Inset(geom.Sz2(20.0, 40.0)))

	shrunk := r.InsetEdges(10.0, 20.0, 30.0, 40.0)
	require.Equal(t, geom.R(110.0, 120.0, 170.0, 160.0), shrunk)
}

func TestRectValidity(t *testing.T) {
	require.False(t, geom.R(0.0, 0.0, 0.0, 0.0).Valid())
	require.False(t, geom.R(0.0, 0.0, 10.0, 0.0).Valid())
	require.False(t, geom.R(10.0, 10.0, 0.0, 0.0).Valid())
	require.True(t, geom.R(0.0, 0.0, 1.0, 1.0).Valid())
}
