// SPDX-License-Identifier: MIT

package fixed

// DiagMirror returns the transpose of m as a C×R matrix, computed by
// permuting flattened indices rather than swapping rows and columns.
//
// For an array of n = R*C elements, source index i < n-1 moves to
// (i*C) mod (n-1) and the last index stays put. Writing i = c*R + r gives
// i*C ≡ r*C + c (mod n-1), which is exactly the flattened position of
// (column r, row c) in the mirrored shape. One- and zero-element matrices
// are fixed points.
//
// Stage 1 (Prepare): read the flat source and allocate the target.
// Stage 2 (Execute): scatter every element to its permuted index.
// Complexity: O(R*C) time and memory.
func (m *Matrix[R, C]) DiagMirror() *Matrix[C, R] {
	mustNotNil("Matrix.DiagMirror", m)

	// Stage 1: Prepare
	src := m.flat()
	cols := m.Cols()
	out := make([]float32, len(src))
	last := len(src) - 1

	// Stage 2: Execute
	for i, x := range src {
		if i == last {
			out[last] = x // fixed point; also avoids mod 0 for a single element

			continue
		}
		out[(i*cols)%last] = x
	}

	return newMatrixFrom[C, R](out)
}

// Transpose returns the transpose of m as a C×R matrix using the structural
// rule out.column(r)[c] = m.column(c)[r]. It always agrees with DiagMirror.
// Complexity: O(R*C) time and memory.
func (m *Matrix[R, C]) Transpose() *Matrix[C, R] {
	mustNotNil("Matrix.Transpose", m)
	rows, cols := m.Rows(), m.Cols()
	out := NewMatrix[C, R]()
	var r, c int // loop iterators
	for c = 0; c < cols; c++ {
		src := m.column(c)
		for r = 0; r < rows; r++ {
			out.cols[r].data[c] = src[r]
		}
	}

	return out
}
