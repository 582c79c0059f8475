// Package nwalign is a small toolkit for optimal global
// sequence alignment (Needleman–Wunsch) under a linear gap penalty.
//
// 🚀 What is in the box?
//
//	• align/   — the engine: Build fills the penalty table, Traceback walks it
//	             back into one optimal alignment (diagonal > up > left ties).
//	• scoring/ — cost models: the default 0/2 Unit model, Constant, and rune
//	             substitution matrices loaded from YAML.
//	• cmd/nwalign — a CLI that aligns single pairs, the demo pairs or a YAML
//	             batch in parallel, and prints highlighted or JSON reports.
//
// ✨ Why?
//
//   - Generic over any comparable symbol type (runes, codons, tokens).
//   - Deterministic output: fixed tie-break order, no hidden global state.
//   - Explicit configuration: cost model and gap penalty are always passed in.
//
// Quick ASCII example (CRANE vs RAIN, cost 0/2, gap 1, penalty 3):
//
//	CRA-NE
//	-RAIN-
//
//	go get github.com/katalvlaran/nwalign
package nwalign
