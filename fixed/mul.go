// SPDX-License-Identifier: MIT

package fixed

import (
	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/internal/kernel"
)

// Mul returns the product of a (C stored columns of R values) and
// b (R stored columns of I values) as C stored columns of I values.
//
// Reading each stored column as a row, this is the ordinary row-major
// product: a is C×R, b is R×I and the result is C×I. The shared type
// parameter R enforces the inner-dimension match at compile time.
//
// Stage 1 (Prepare): mirror b so its former rows become stored columns.
// Stage 2 (Execute): output index j is a.column(j/I) · mirrored.column(j%I).
// Complexity: O(C*I*R) time, O(R*I + C*I) memory.
func Mul[R, C, I dim.Dim](a *Matrix[R, C], b *Matrix[I, R]) *Matrix[I, C] {
	mustNotNil("Mul", a)
	mustNotNil("Mul", b)

	// Stage 1: Prepare
	mirrored := b.DiagMirror() // R×I: column u holds b's former row u
	inner := sizeOf[I]()
	out := make([]float32, inner*sizeOf[C]())

	// Stage 2: Execute
	for j := range out {
		out[j] = kernel.Dot(a.column(j/inner), mirrored.column(j%inner))
	}

	return newMatrixFrom[I, C](out)
}
