// SPDX-License-Identifier: MIT

// Package batch aligns many independent string pairs, in parallel, keeping
// the results in input order.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadPairs indicates a pairs file that does not decode to a list of
// two-element string lists.
var ErrBadPairs = errors.New("batch: invalid pairs file")

// Pair is one alignment job.
type Pair struct {
	X, Y string
}

// pairsFile is the YAML layout accepted by ReadPairs:
//
//	pairs:
//	  - [CRANE, RAIN]
//	  - [CYCLE, BICYCLE]
type pairsFile struct {
	Pairs [][]string `yaml:"pairs"`
}

// DemoPairs returns the reference word pairs of the demo report.
func DemoPairs() []Pair {
	return []Pair{
		{"CRANE", "RAIN"},
		{"CYCLE", "BICYCLE"},
		{"ASTRONOMY", "GASTRONOMY"},
		{"INTENTION", "EXECUTION"},
		{"AGGTAB", "GXTXAYB"},
		{"GATTACA", "GCATGCU"},
		{"DELICIOUS", "RELIGIOUS"},
	}
}

// ReadPairs decodes a YAML pairs file from r.
func ReadPairs(r io.Reader) ([]Pair, error) {
	var f pairsFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty input: %w", ErrBadPairs)
		}
		return nil, fmt.Errorf("decode: %v: %w", err, ErrBadPairs)
	}

	out := make([]Pair, 0, len(f.Pairs))
	for i, p := range f.Pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("entry %d has %d sequences, want 2: %w", i, len(p), ErrBadPairs)
		}
		out = append(out, Pair{X: p[0], Y: p[1]})
	}

	return out, nil
}

// LoadPairs reads a YAML pairs file from path.
func LoadPairs(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := ReadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}
