// Package fixed_test provides benchmarks for the fixed package, using
// deterministic integer fill.
package fixed_test

import (
	"testing"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/fixed"
)

// sinks to defeat dead-code elimination
var (
	sinkM4 *fixed.Matrix[dim.D4, dim.D4]
	sinkM  *fixed.Matrix[dim.D16, dim.D16]
	sinkV  *fixed.Vector[dim.D16]
	sinkF  float32
)

func BenchmarkMul4(b *testing.B) {
	b.ReportAllocs()
	x := randomMatrix[dim.D4, dim.D4](b, 1)
	y := randomMatrix[dim.D4, dim.D4](b, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = fixed.Mul(x, y)
	}
}

func BenchmarkMul16(b *testing.B) {
	b.ReportAllocs()
	x := randomMatrix[dim.D16, dim.D16](b, 1)
	y := randomMatrix[dim.D16, dim.D16](b, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = fixed.Mul(x, y)
	}
}

func BenchmarkDiagMirror16(b *testing.B) {
	b.ReportAllocs()
	x := randomMatrix[dim.D16, dim.D16](b, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = x.DiagMirror()
	}
}

func BenchmarkTranspose16(b *testing.B) {
	b.ReportAllocs()
	x := randomMatrix[dim.D16, dim.D16](b, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = x.Transpose()
	}
}

func BenchmarkVectorDot16(b *testing.B) {
	b.ReportAllocs()
	x := randomMatrix[dim.D16, dim.D1](b, 4).Column(0)
	y := randomMatrix[dim.D16, dim.D1](b, 5).Column(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = x.Dot(y)
	}
}

func BenchmarkVectorMulElem16(b *testing.B) {
	b.ReportAllocs()
	x := randomMatrix[dim.D16, dim.D1](b, 6).Column(0)
	y := randomMatrix[dim.D16, dim.D1](b, 7).Column(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV = x.MulElem(y)
	}
}
