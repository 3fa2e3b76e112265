// SPDX-License-Identifier: MIT

package fixed

import (
	"iter"
	"strings"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/internal/kernel"
)

// Matrix is an R×C float32 matrix stored column-major as C column vectors of
// R elements each. The zero value is a valid all-zero matrix.
//
// Flattened index k (0 <= k < R*C) addresses column k/R, row k%R.
type Matrix[R, C dim.Dim] struct {
	data []float32   // flat storage, len == R*C; nil reads as zeros
	cols []Vector[R] // C views into data, one per column
}

// NewMatrix returns an all-zero R×C matrix.
// Complexity: O(R*C).
func NewMatrix[R, C dim.Dim]() *Matrix[R, C] {
	return newMatrixFrom[R, C](make([]float32, dim.Product[R, C]()))
}

// MatrixOf builds a matrix from a nested literal holding C inner slices of R
// values each; inner slice j becomes stored column j. The literal is
// flattened in order and collected into R*C scalars.
//
// Returns ErrShapeMismatch when the outer length is not C or any inner length
// is not R.
func MatrixOf[R, C dim.Dim](literal [][]float32) (*Matrix[R, C], error) {
	rows, cols := sizeOf[R](), sizeOf[C]()
	if len(literal) != cols {
		return nil, fixedErrorf("MatrixOf: outer length", ErrShapeMismatch)
	}
	for _, inner := range literal {
		if len(inner) != rows {
			return nil, fixedErrorf("MatrixOf: inner length", ErrShapeMismatch)
		}
	}

	return CollectMatrix[R, C](flatten(literal))
}

// MustMatrixOf is like MatrixOf but panics on a shape mismatch.
func MustMatrixOf[R, C dim.Dim](literal [][]float32) *Matrix[R, C] {
	m, err := MatrixOf[R, C](literal)
	if err != nil {
		panic(err)
	}

	return m
}

// CollectMatrix builds a matrix from exactly R*C values in flattened order.
// Returns ErrLengthMismatch otherwise; seq is not drained past R*C+1.
func CollectMatrix[R, C dim.Dim](seq iter.Seq[float32]) (*Matrix[R, C], error) {
	n := sizeOf[R]() * sizeOf[C]()
	data, got := collect(seq, n)
	if err := validateCount("CollectMatrix", got, n); err != nil {
		return nil, err
	}

	return newMatrixFrom[R, C](data), nil
}

// MustCollectMatrix is like CollectMatrix but panics on a length mismatch.
func MustCollectMatrix[R, C dim.Dim](seq iter.Seq[float32]) *Matrix[R, C] {
	m, err := CollectMatrix[R, C](seq)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns R, the length of every stored column.
func (m *Matrix[R, C]) Rows() int { return sizeOf[R]() }

// Cols returns C, the number of stored columns.
func (m *Matrix[R, C]) Cols() int { return sizeOf[C]() }

// Len returns R*C.
func (m *Matrix[R, C]) Len() int { return m.Rows() * m.Cols() }

// At returns the element at flattened index k.
// Panics with ErrOutOfRange unless 0 <= k < R*C.
// Complexity: O(1).
func (m *Matrix[R, C]) At(k int) float32 {
	checkIndex("Matrix.At", k, m.Len())
	if m.data == nil {
		return 0
	}
	rows := m.Rows()

	return m.cols[k/rows].data[k%rows]
}

// Set assigns the element at flattened index k.
// Panics with ErrOutOfRange unless 0 <= k < R*C.
// Complexity: O(1).
func (m *Matrix[R, C]) Set(k int, x float32) {
	checkIndex("Matrix.Set", k, m.Len())
	m.materialize()
	rows := m.Rows()
	m.cols[k/rows].data[k%rows] = x
}

// Column returns a copy of stored column j.
// Panics with ErrOutOfRange unless 0 <= j < C.
func (m *Matrix[R, C]) Column(j int) *Vector[R] {
	checkIndex("Matrix.Column", j, m.Cols())
	out := NewVector[R]()
	copy(out.data, m.column(j))

	return out
}

// SetColumn overwrites stored column j with the values of v.
// Panics with ErrOutOfRange unless 0 <= j < C.
func (m *Matrix[R, C]) SetColumn(j int, v *Vector[R]) {
	checkIndex("Matrix.SetColumn", j, m.Cols())
	mustNotNil("Matrix.SetColumn", v)
	m.materialize()
	copy(m.cols[j].data, v.view())
}

// Add returns m + rhs, element by element.
// Complexity: O(R*C).
func (m *Matrix[R, C]) Add(rhs *Matrix[R, C]) *Matrix[R, C] {
	mustNotNil("Matrix.Add", m)
	mustNotNil("Matrix.Add", rhs)
	out := NewMatrix[R, C]()
	kernel.Add(out.data, m.flat(), rhs.flat())

	return out
}

// Sub returns m - rhs, element by element.
// Complexity: O(R*C).
func (m *Matrix[R, C]) Sub(rhs *Matrix[R, C]) *Matrix[R, C] {
	mustNotNil("Matrix.Sub", m)
	mustNotNil("Matrix.Sub", rhs)
	out := NewMatrix[R, C]()
	kernel.Sub(out.data, m.flat(), rhs.flat())

	return out
}

// Scale returns alpha*m.
func (m *Matrix[R, C]) Scale(alpha float32) *Matrix[R, C] {
	mustNotNil("Matrix.Scale", m)
	out := NewMatrix[R, C]()
	kernel.Scale(out.data, m.flat(), alpha)

	return out
}

// Clone returns an independent copy of m.
// Complexity: O(R*C).
func (m *Matrix[R, C]) Clone() *Matrix[R, C] {
	mustNotNil("Matrix.Clone", m)
	out := NewMatrix[R, C]()
	copy(out.data, m.data)

	return out
}

// Equal reports whether m and rhs hold identical values.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func (m *Matrix[R, C]) Equal(rhs *Matrix[R, C]) bool {
	if m == nil || rhs == nil {
		return m == rhs
	}

	return equalValues(m.flat(), rhs.flat())
}

// Values yields the R*C elements in flattened order.
func (m *Matrix[R, C]) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, x := range m.flat() {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields (flattened index, value) pairs in order.
func (m *Matrix[R, C]) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		for k, x := range m.flat() {
			if !yield(k, x) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements in flattened order.
func (m *Matrix[R, C]) Slice() []float32 {
	out := make([]float32, m.Len())
	copy(out, m.data)

	return out
}

// String renders each stored column on its own line, in storage order.
// This mirrors the column-major layout, not a conventional row printout;
// render Transpose() or DiagMirror() for the other view.
func (m *Matrix[R, C]) String() string {
	return m.Render()
}

// Render is String with rendering options applied.
func (m *Matrix[R, C]) Render(opts ...Option) string {
	o := gatherOptions(opts...)
	var sb strings.Builder
	for j := 0; j < m.Cols(); j++ {
		writeVector(&sb, m.column(j), o)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// newMatrixFrom wraps data (len R*C, flattened order) without copying and
// carves it into C column views capped at their own length.
func newMatrixFrom[R, C dim.Dim](data []float32) *Matrix[R, C] {
	rows, ncols := sizeOf[R](), sizeOf[C]()
	cols := make([]Vector[R], ncols)
	for j := range cols {
		lo, hi := j*rows, (j+1)*rows
		cols[j].data = data[lo:hi:hi]
	}

	return &Matrix[R, C]{data: data, cols: cols}
}

// flat returns the flattened storage for reading.
func (m *Matrix[R, C]) flat() []float32 {
	if m.data == nil {
		return make([]float32, m.Len())
	}

	return m.data
}

// column returns stored column j for reading, without copying.
func (m *Matrix[R, C]) column(j int) []float32 {
	if m.data == nil {
		return make([]float32, m.Rows())
	}

	return m.cols[j].data
}

// materialize allocates storage for a zero-value matrix before a write.
func (m *Matrix[R, C]) materialize() {
	if m.data == nil {
		*m = *newMatrixFrom[R, C](make([]float32, m.Len()))
	}
}

// flatten yields the literal's values in order.
func flatten(literal [][]float32) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, inner := range literal {
			for _, x := range inner {
				if !yield(x) {
					return
				}
			}
		}
	}
}
