// SPDX-License-Identifier: MIT

package fixed

import (
	"strconv"
	"strings"
)

// writeVector renders values as one bracketed line (no trailing newline).
// Complexity: O(n).
func writeVector(sb *strings.Builder, values []float32, o Options) {
	sb.WriteString(o.open)
	for i, v := range values {
		if i > 0 {
			sb.WriteString(o.separator)
		}
		sb.WriteString(formatScalar(v, o.precision))
	}
	sb.WriteString(o.close)
}

// formatScalar formats v as a float32: shortest form for precision -1,
// fixed-point otherwise.
func formatScalar(v float32, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}

	return strconv.FormatFloat(float64(v), 'f', precision, 32)
}
