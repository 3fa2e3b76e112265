// SPDX-License-Identifier: MIT
// Package: fixed
//
// Purpose:
//   - Single source of truth for size, index and operand checks.
//   - Return plain wrapped sentinels (constructors) or panic with them
//     (indexers, nil operands) so that errors.Is works on both paths.

package fixed

import (
	"fmt"

	"github.com/katalvlaran/fixedla/dim"
)

// sizeOf returns the size carried by marker D.
// Panics with ErrInvalidDim for a negative size.
// Complexity: O(1).
func sizeOf[D dim.Dim]() int {
	n := dim.Of[D]()
	if n < 0 {
		var d D
		panic(fmt.Errorf("%T.Size() = %d: %w", d, n, ErrInvalidDim))
	}

	return n
}

// checkIndex panics with ErrOutOfRange unless 0 <= i < n.
func checkIndex(tag string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%s(%d) with len %d: %w", tag, i, n, ErrOutOfRange))
	}
}

// validateCount reports ErrLengthMismatch when got != want.
func validateCount(tag string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: got %d values, want %d: %w", tag, got, want, ErrLengthMismatch)
	}

	return nil
}

// mustNotNil panics with ErrNilOperand when ptr is nil.
func mustNotNil[T any](tag string, ptr *T) {
	if ptr == nil {
		panic(fixedErrorf(tag, ErrNilOperand))
	}
}
