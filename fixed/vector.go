// SPDX-License-Identifier: MIT

package fixed

import (
	"iter"
	"strings"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/internal/kernel"
)

// Vector is an S-element float32 vector. Its length is fixed by the type and
// never changes. The zero value is a valid all-zero vector.
type Vector[S dim.Dim] struct {
	data []float32 // len == S once materialised; nil reads as zeros
}

// NewVector returns an all-zero vector of size S.
// Complexity: O(S).
func NewVector[S dim.Dim]() *Vector[S] {
	return &Vector[S]{data: make([]float32, sizeOf[S]())}
}

// VectorOf builds a vector from exactly S values, in order.
// Returns ErrLengthMismatch when len(values) != S. values is copied.
func VectorOf[S dim.Dim](values ...float32) (*Vector[S], error) {
	if err := validateCount("VectorOf", len(values), sizeOf[S]()); err != nil {
		return nil, err
	}
	data := make([]float32, len(values))
	copy(data, values)

	return &Vector[S]{data: data}, nil
}

// MustVectorOf is like VectorOf but panics on a length mismatch.
func MustVectorOf[S dim.Dim](values ...float32) *Vector[S] {
	v, err := VectorOf[S](values...)
	if err != nil {
		panic(err)
	}

	return v
}

// CollectVector builds a vector from the values yielded by seq.
// seq must yield exactly S values; it is not drained past S+1.
// Returns ErrLengthMismatch otherwise.
func CollectVector[S dim.Dim](seq iter.Seq[float32]) (*Vector[S], error) {
	n := sizeOf[S]()
	data, got := collect(seq, n)
	if err := validateCount("CollectVector", got, n); err != nil {
		return nil, err
	}

	return &Vector[S]{data: data}, nil
}

// MustCollectVector is like CollectVector but panics on a length mismatch.
func MustCollectVector[S dim.Dim](seq iter.Seq[float32]) *Vector[S] {
	v, err := CollectVector[S](seq)
	if err != nil {
		panic(err)
	}

	return v
}

// Len returns S.
func (v *Vector[S]) Len() int {
	return sizeOf[S]()
}

// At returns element i. Panics with ErrOutOfRange unless 0 <= i < S.
// Complexity: O(1).
func (v *Vector[S]) At(i int) float32 {
	checkIndex("Vector.At", i, v.Len())
	if v.data == nil {
		return 0
	}

	return v.data[i]
}

// Set assigns element i. Panics with ErrOutOfRange unless 0 <= i < S.
// Complexity: O(1).
func (v *Vector[S]) Set(i int, x float32) {
	checkIndex("Vector.Set", i, v.Len())
	v.materialize()
	v.data[i] = x
}

// Add returns v + rhs.
// Complexity: O(S).
func (v *Vector[S]) Add(rhs *Vector[S]) *Vector[S] {
	mustNotNil("Vector.Add", v)
	mustNotNil("Vector.Add", rhs)
	out := NewVector[S]()
	kernel.Add(out.data, v.view(), rhs.view())

	return out
}

// Sub returns v - rhs.
// Complexity: O(S).
func (v *Vector[S]) Sub(rhs *Vector[S]) *Vector[S] {
	mustNotNil("Vector.Sub", v)
	mustNotNil("Vector.Sub", rhs)
	out := NewVector[S]()
	kernel.Sub(out.data, v.view(), rhs.view())

	return out
}

// MulElem returns the element-wise product: out[i] = v[i] * rhs[i].
// Complexity: O(S).
func (v *Vector[S]) MulElem(rhs *Vector[S]) *Vector[S] {
	mustNotNil("Vector.MulElem", v)
	mustNotNil("Vector.MulElem", rhs)
	out := NewVector[S]()
	kernel.MulElem(out.data, v.view(), rhs.view())

	return out
}

// Dot returns Σ v[i]*rhs[i]. A zero-length vector yields 0.
// Complexity: O(S).
func (v *Vector[S]) Dot(rhs *Vector[S]) float32 {
	mustNotNil("Vector.Dot", v)
	mustNotNil("Vector.Dot", rhs)

	return kernel.Dot(v.view(), rhs.view())
}

// Scale returns alpha*v.
func (v *Vector[S]) Scale(alpha float32) *Vector[S] {
	mustNotNil("Vector.Scale", v)
	out := NewVector[S]()
	kernel.Scale(out.data, v.view(), alpha)

	return out
}

// Norm returns the Euclidean length of v.
func (v *Vector[S]) Norm() float32 {
	mustNotNil("Vector.Norm", v)

	return kernel.Norm(v.view())
}

// NormInf returns max |v[i]|, or 0 when S == 0.
func (v *Vector[S]) NormInf() float32 {
	mustNotNil("Vector.NormInf", v)

	return kernel.MaxAbs(v.view())
}

// Clone returns an independent copy of v.
// Complexity: O(S).
func (v *Vector[S]) Clone() *Vector[S] {
	mustNotNil("Vector.Clone", v)
	out := NewVector[S]()
	copy(out.data, v.data)

	return out
}

// Equal reports whether v and rhs hold identical values.
// Two nil vectors are equal; a nil and a non-nil vector are not.
func (v *Vector[S]) Equal(rhs *Vector[S]) bool {
	if v == nil || rhs == nil {
		return v == rhs
	}

	return equalValues(v.view(), rhs.view())
}

// Values yields the S elements in index order.
func (v *Vector[S]) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, x := range v.view() {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields (index, value) pairs in index order.
func (v *Vector[S]) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		for i, x := range v.view() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (v *Vector[S]) Slice() []float32 {
	out := make([]float32, v.Len())
	copy(out, v.data)

	return out
}

// String renders the elements in order, e.g. "[1, 2, 3]".
// Diagnostic only; not a parseable format.
func (v *Vector[S]) String() string {
	return v.Render()
}

// Render is String with rendering options applied.
func (v *Vector[S]) Render(opts ...Option) string {
	var sb strings.Builder
	writeVector(&sb, v.view(), gatherOptions(opts...))

	return sb.String()
}

// view returns the backing elements for reading. A zero-value vector yields
// a fresh zero slice so callers never observe nil storage.
func (v *Vector[S]) view() []float32 {
	if v.data == nil {
		return make([]float32, v.Len())
	}

	return v.data
}

// materialize allocates storage for a zero-value vector before a write.
func (v *Vector[S]) materialize() {
	if v.data == nil {
		v.data = make([]float32, v.Len())
	}
}

// collect pulls at most n+1 values from seq into an n-slot buffer and
// reports how many were seen.
func collect(seq iter.Seq[float32], n int) ([]float32, int) {
	data := make([]float32, n)
	if seq == nil {
		return data, 0
	}
	count := 0
	for x := range seq {
		if count == n {
			count++ // one extra is enough to report the mismatch

			break
		}
		data[count] = x
		count++
	}

	return data, count
}

// equalValues compares element by element; NaN never equals NaN.
func equalValues(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
