// Package fixed provides fixed-dimension float32 vectors and matrices.
//
// Sizes are type parameters (see package dim), so operands of Add, Sub,
// MulElem, Dot and Mul must agree in shape at compile time:
//
//	a := fixed.MustVectorOf[dim.D3](1, 2, 3)
//	b := fixed.MustVectorOf[dim.D3](4, 5, 6)
//	a.Dot(b) // 32
//
// Storage:
//
//   - Vector[S] holds exactly S float32 values.
//   - Matrix[R, C] holds exactly C column vectors of R values each
//     (column-major). A flattened index k addresses column k/R, row k%R.
//
// Literals passed to MatrixOf list the stored vectors in order, so
// MatrixOf[dim.D2, dim.D3]([][]float32{{3, 3}, {1, 2}, {0, 6}}) stores three
// vectors of two values each. Read as rows, that literal is the familiar 3×2
// matrix, and Mul(a, b) is then the ordinary row-major product a·b.
//
// Mul is built from a single reindexing step: the right operand is mirrored
// with DiagMirror (a transpose done by flattened-index permutation), after
// which every output element is the dot product of two stored columns.
//
// Error model:
//
//   - Constructors taking untrusted sequences return an error matching
//     ErrLengthMismatch or ErrShapeMismatch; Must* variants panic with it.
//   - Out-of-range indices and nil operands are programmer errors and panic
//     with an error wrapping ErrOutOfRange or ErrNilOperand.
//
// All operations return freshly allocated values and never keep references to
// their arguments. Values are handled through pointers; Clone gives an
// independent copy.
package fixed
