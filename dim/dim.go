// SPDX-License-Identifier: MIT

// Package dim provides compile-time dimension markers for the fixed package.
//
// Go has no const generics, so a dimension is carried as a type parameter
// whose zero value reports the size. Two vectors of different marker types
// are distinct types, so size mismatches between operands are rejected by the
// compiler rather than checked at call time:
//
//	var a fixed.Vector[dim.D3]
//	var b fixed.Vector[dim.D4]
//	a.Add(&b) // does not compile
//
// Markers D0..D16 are predeclared. Any other size is one declaration away:
//
//	type D32 struct{}
//
//	func (D32) Size() int { return 32 }
//
// Size must be a non-negative constant; the fixed package panics with
// fixed.ErrInvalidDim when it observes a negative size.
package dim

// Dim is implemented by dimension marker types.
// Size is called on the zero value and must not depend on any state.
type Dim interface {
	Size() int
}

// Of returns the size carried by marker D.
// Complexity: O(1).
func Of[D Dim]() int {
	var d D // zero value carries the size

	return d.Size()
}

// Product returns Of[A]() * Of[B](), the element count of an A×B container.
func Product[A, B Dim]() int {
	return Of[A]() * Of[B]()
}
