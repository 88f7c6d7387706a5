// Package adder implements overflow-checked signed 64-bit addition.
package adder

import (
	"errors"
	"math"
)

// ErrOverflow reports that the mathematical sum of two operands falls
// outside the representable int64 range.
var ErrOverflow = errors.New("sum overflows int64")

// Add returns the exact sum of a and b. When the mathematical sum is not
// representable as an int64, it returns (0, ErrOverflow); the zero value is
// a defined safe sentinel, and the caller decides how to report the
// condition. Add is pure and deterministic.
func Add(a, b int64) (int64, error) {
	// Pre-check instead of inspecting the result: overflow of signed
	// integers must be detected before it happens.
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}
