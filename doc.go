// Package fixedla is a small linear-algebra library with fixed-dimension
// float32 vectors and matrices whose sizes are part of their types.
//
// What is inside:
//
//	dim/      — compile-time dimension markers (D0..D16, or your own)
//	fixed/    — Vector[S], Matrix[R, C], Mul, DiagMirror, Transpose
//	examples/ — a runnable product of a 3×2 and a 2×4 matrix
//
// Shapes are checked by the compiler: adding a Vector[dim.D3] to a
// Vector[dim.D4], or multiplying matrices whose inner sizes differ, does not
// build. Lengths of runtime inputs (slices, iterators, literals) are checked
// at construction and reported as errors; out-of-range indices panic.
//
// Quick example:
//
//	a := fixed.MustVectorOf[dim.D3](1, 2, 3)
//	b := fixed.MustVectorOf[dim.D3](4, 5, 6)
//	a.Dot(b)     // 32
//	a.MulElem(b) // [4, 10, 18]
//
//	go get github.com/katalvlaran/fixedla
package fixedla
