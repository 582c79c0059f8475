// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"math"
)

// Defaults (single source of truth). The CLI config layer and the examples
// read these instead of repeating literals.
const (
	// DefaultMatchCost is the penalty for aligning two equal symbols.
	DefaultMatchCost float64 = 0

	// DefaultMismatchCost is the penalty for aligning two different symbols.
	DefaultMismatchCost float64 = 2

	// DefaultGapPenalty is the linear penalty charged per gap column.
	DefaultGapPenalty float64 = 1
)

// CostFunc returns the substitution penalty for aligning a against b.
// It must be pure and total over the symbols the caller's sequences contain,
// and must return a finite value ≥ 0. The alignment engine rejects anything
// else with align.ErrInvalidCost at the first offending call.
type CostFunc[T comparable] func(a, b T) float64

// Unit is the default cost model: DefaultMatchCost for equal symbols,
// DefaultMismatchCost otherwise.
// Complexity: O(1). Never panics.
func Unit[T comparable](a, b T) float64 {
	if a == b {
		return DefaultMatchCost
	}

	return DefaultMismatchCost
}

// Constant returns a CostFunc yielding match for equal symbols and mismatch
// for different ones.
// Panics if either value is negative, NaN or ±Inf (programmer error).
// Complexity: O(1) per call.
func Constant[T comparable](match, mismatch float64) CostFunc[T] {
	if !validCost(match) || !validCost(mismatch) {
		panic(fmt.Sprintf("scoring: Constant: costs must be finite and ≥ 0, got match=%g, mismatch=%g", match, mismatch))
	}

	return func(a, b T) float64 {
		if a == b {
			return match
		}

		return mismatch
	}
}

// ValidateGap reports ErrInvalidGap for a negative, NaN or infinite gap penalty.
func ValidateGap(gap float64) error {
	if !validCost(gap) {
		return fmt.Errorf("gap=%g: %w", gap, ErrInvalidGap)
	}

	return nil
}

// validCost reports whether v is usable as a penalty.
func validCost(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1) // NaN fails v >= 0
}
