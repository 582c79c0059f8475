// SPDX-License-Identifier: MIT

// Package scoring defines the cost models consumed by the alignment engine.
//
// A cost model is a pure function mapping an ordered pair of symbols to a
// non-negative penalty. The engine always calls it as cost(x, y) with x taken
// from the first sequence, so asymmetric models are legal.
//
// What is provided:
//
//   - CostFunc[T]   — the capability type, any comparable symbol type.
//   - Unit[T]       — the default 0 (equal) / 2 (different) model.
//   - Constant[T]   — the same shape with caller-chosen constants.
//   - Matrix        — a rune substitution matrix over a fixed alphabet,
//     loadable from YAML (see ReadMatrix).
//
// Gap penalties are linear: one finite, non-negative scalar per gap column.
// DefaultGapPenalty is the single named default; pass the same value to both
// align.Build and align.Traceback.
//
// Example YAML substitution matrix (transitions cheaper than transversions):
//
//	alphabet: ACGT
//	costs:
//	  - [0, 2, 1, 2]
//	  - [2, 0, 2, 1]
//	  - [1, 2, 0, 2]
//	  - [2, 1, 2, 0]
package scoring
