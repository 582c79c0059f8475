// SPDX-License-Identifier: MIT

package scoring

import "errors"

// Sentinel errors. Every message is prefixed with "scoring:"; callers match
// them with errors.Is, context is attached with fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidGap indicates a gap penalty that is negative, NaN or ±Inf.
	ErrInvalidGap = errors.New("scoring: gap penalty must be finite and non-negative")

	// ErrBadMatrix indicates a malformed substitution matrix: empty or duplicate
	// alphabet, non-square cost rows, or a negative/NaN/Inf entry.
	ErrBadMatrix = errors.New("scoring: invalid substitution matrix")

	// ErrUnknownSymbol indicates a lookup for a symbol outside the matrix alphabet.
	ErrUnknownSymbol = errors.New("scoring: symbol not in alphabet")
)
