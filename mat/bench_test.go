// Package mat_test provides benchmarks for the hot matrix operations:
// multiplication, determinant, inverse and vector application.
package mat_test

import (
	"testing"

	"github.com/katalvlaran/gmath/geom"
	"github.com/katalvlaran/gmath/mat"
	"github.com/katalvlaran/gmath/vec"
)

// sinks to defeat dead-code elimination
var (
	sinkM3 mat.Mat3[float64]
	sinkM4 mat.Mat4[float64]
	sinkV4 vec.Vec4[float64]
	sinkP2 geom.Point2[float64]
	sinkF  float64
)

var (
	benchA4 = mat.Mat4[float64]{
		2, 0, 0, 0,
		0, 3, 1, 0,
		0, -1, 3, 0,
		1, 2, 3, 1,
	}
	benchB4 = mat.Mat4[float64]{
		1, 0, 0, 0,
		0, 0.5, -0.5, 0,
		0, 0.5, 0.5, 0,
		-1, -2, -3, 1,
	}
	benchM3 = mat.Mat3[float64]{
		2, -1, 0,
		1, 3, -2,
		0, 1, 4,
	}
)

func BenchmarkMat3Mul(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM3 = benchM3.Mul(benchM3)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM4 = benchA4.Mul(benchB4)
	}
}

func BenchmarkMat3Det(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = benchM3.Det()
	}
}

func BenchmarkMat4Det(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = benchA4.Det()
	}
}

func BenchmarkMat3Inverse(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := benchM3.Inverse()
		if err != nil {
			b.Fatal(err)
		}
		sinkM3 = inv
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := benchA4.Inverse()
		if err != nil {
			b.Fatal(err)
		}
		sinkM4 = inv
	}
}

func BenchmarkTransformVec(b *testing.B) {
	v := vec.V4(1.0, 2.0, 3.0, 1.0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV4 = benchA4.TransformVec(v)
	}
}

func BenchmarkTransformPoint2D(b *testing.B) {
	m := mat.Translate2D(vec.V2(3.0, -7.0)).Mul(mat.Scale2D(geom.Sz2(2.0, 2.0)))
	p := geom.Pt2(10.0, 20.0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkP2 = m.TransformPoint(p)
	}
}
