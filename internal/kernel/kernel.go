// SPDX-License-Identifier: MIT
// Package: kernel
//
// Purpose:
//   - Provide the flat float32 kernels behind fixed.Vector and fixed.Matrix.
//   - Keep all BLAS/SIMD plumbing in one place so the public types stay thin.
//
// Backends:
//   - gonum blas32 (Sdot, Scopy, Saxpy, Sscal, Snrm2) for float32 level-1 ops.
//   - algo-vecmath block kernels for element-wise product and max-abs. They
//     work on float64; float32 operands are widened first. The product of two
//     float32 values is exact in float64, so narrowing back rounds once and
//     the result equals a native float32 multiply bit for bit.
//
// Contract:
//   - Callers guarantee equal lengths; the kernels panic otherwise, as the
//     underlying libraries do.
//   - dst may alias an input only where noted.

package kernel

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/blas/blas32"
)

// vec wraps a unit-stride slice as a blas32 vector.
func vec(x []float32) blas32.Vector {
	return blas32.Vector{N: len(x), Inc: 1, Data: x}
}

// Dot returns Σ a[i]*b[i]. Empty input yields 0.
// Complexity: O(n).
func Dot(a, b []float32) float32 {
	return blas32.Dot(vec(a), vec(b))
}

// Add writes a[i]+b[i] into dst. dst may alias a.
func Add(dst, a, b []float32) {
	blas32.Copy(vec(a), vec(dst))
	blas32.Axpy(1, vec(b), vec(dst))
}

// Sub writes a[i]-b[i] into dst. dst may alias a.
func Sub(dst, a, b []float32) {
	blas32.Copy(vec(a), vec(dst))
	blas32.Axpy(-1, vec(b), vec(dst))
}

// Scale writes alpha*src[i] into dst. dst may alias src.
func Scale(dst, src []float32, alpha float32) {
	blas32.Copy(vec(src), vec(dst))
	blas32.Scal(alpha, vec(dst))
}

// Norm returns the Euclidean norm of x.
func Norm(x []float32) float32 {
	return blas32.Nrm2(vec(x))
}

// MulElem writes a[i]*b[i] into dst.
// Complexity: O(n) time, O(n) scratch.
func MulElem(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	wa, wb := widen(a), widen(b)
	vecmath.MulBlockInPlace(wa, wb) // wa[i] *= wb[i]
	narrow(dst, wa)
}

// MaxAbs returns max |x[i]|, or 0 for an empty slice.
func MaxAbs(x []float32) float32 {
	return float32(vecmath.MaxAbs(widen(x)))
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}

	return out
}

func narrow(dst []float32, src []float64) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}
