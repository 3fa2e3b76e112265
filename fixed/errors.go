// SPDX-License-Identifier: MIT
// Package fixed: sentinel error set.
// Every message is prefixed with "fixed: ". Callers match with errors.Is;
// context is added by wrapping with fmt.Errorf("Op: %w", ErrX).

package fixed

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index outside [0, Len()).
	// Indexers panic with an error wrapping it.
	ErrOutOfRange = errors.New("fixed: index out of range")

	// ErrLengthMismatch indicates a sequence whose element count differs from
	// the container's fixed size. Sequences are never truncated or padded.
	ErrLengthMismatch = errors.New("fixed: length mismatch")

	// ErrShapeMismatch indicates a nested literal whose outer or inner length
	// differs from the matrix shape. It also matches ErrLengthMismatch.
	ErrShapeMismatch = fmt.Errorf("fixed: shape mismatch: %w", ErrLengthMismatch)

	// ErrNilOperand indicates a nil *Vector or *Matrix passed to an operation.
	ErrNilOperand = errors.New("fixed: nil operand")

	// ErrInvalidDim indicates a dim.Dim marker reporting a negative size.
	ErrInvalidDim = errors.New("fixed: dimension must be >= 0")
)

// fixedErrorf wraps err with an operation tag.
func fixedErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
