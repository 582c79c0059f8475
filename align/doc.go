// SPDX-License-Identifier: MIT

// Package align computes optimal global alignments (Needleman–Wunsch) of two
// symbol sequences under a linear gap penalty and a pluggable substitution cost.
//
// 🚀 What is global alignment?
//
//	Every symbol of both sequences is placed in a column, either against a
//	symbol of the other sequence (match or mismatch) or against a gap. The
//	alignment with the minimum total penalty is optimal. It is used in:
//	  • DNA / protein comparison
//	  • spelling correction & fuzzy matching
//	  • diffing token streams
//
// ✨ Two layered steps:
//   - Build     — fill the (m+1)×(n+1) penalty table P.
//   - Traceback — walk P from (m,n) back to (0,0) and emit one optimal path.
//
// Recurrence:
//
//	P[i][0] = i·gap,  P[0][j] = j·gap
//	P[i][j] = min( P[i-1][j-1] + cost(X[i-1], Y[j-1]),   // diagonal
//	               P[i-1][j]   + gap,                      // up   (gap in Y)
//	               P[i][j-1]   + gap )                     // left (gap in X)
//
// Several optimal paths can exist. Traceback always prefers diagonal, then up,
// then left, so identical inputs always produce identical output.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/nwalign/align"
//	  "github.com/katalvlaran/nwalign/scoring"
//	)
//
//	t, err := align.Build(x, y, scoring.Unit[rune], scoring.DefaultGapPenalty)
//	res, err := align.Traceback(t, x, y, scoring.Unit[rune], scoring.DefaultGapPenalty)
//
//	// or, for strings:
//	sr, err := align.Strings("CRANE", "RAIN", scoring.Unit[rune], scoring.DefaultGapPenalty)
//	fmt.Println(sr.X) // CRA-NE
//	fmt.Println(sr.Y) // -RAIN-
//
// Performance:
//
//   - Time:   O(m·n) cost evaluations for Build, O(m+n) for Traceback.
//   - Memory: O(m·n); the full table is kept because Traceback needs it.
//
// Table and Result are immutable once returned and safe for concurrent reads.
package align
