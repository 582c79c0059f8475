// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Matrix is an immutable substitution matrix over a rune alphabet.
// costs is a flat row-major buffer: cost(a, b) lives at index(a)*n + index(b).
type Matrix struct {
	alphabet []rune       // symbols in file order
	index    map[rune]int // symbol -> row/col
	costs    []float64    // len == n*n
}

// matrixFile is the YAML layout accepted by ReadMatrix.
type matrixFile struct {
	Alphabet string      `yaml:"alphabet"`
	Costs    [][]float64 `yaml:"costs"`
}

// NewMatrix builds a Matrix from an alphabet and a square cost table whose
// row r / column c hold cost(alphabet[r], alphabet[c]).
//
// Errors:
//   - ErrBadMatrix if the alphabet is empty or repeats a symbol, if costs is
//     not len(alphabet)×len(alphabet), or if any entry is negative, NaN or ±Inf.
//
// Complexity: O(n²).
func NewMatrix(alphabet string, costs [][]float64) (*Matrix, error) {
	symbols := []rune(alphabet)
	n := len(symbols)
	if n == 0 {
		return nil, fmt.Errorf("empty alphabet: %w", ErrBadMatrix)
	}

	index := make(map[rune]int, n)
	for i, s := range symbols {
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("duplicate symbol %q: %w", s, ErrBadMatrix)
		}
		index[s] = i
	}

	if len(costs) != n {
		return nil, fmt.Errorf("want %d rows, got %d: %w", n, len(costs), ErrBadMatrix)
	}
	flat := make([]float64, n*n)
	for r, row := range costs {
		if len(row) != n {
			return nil, fmt.Errorf("row %d: want %d columns, got %d: %w", r, n, len(row), ErrBadMatrix)
		}
		for c, v := range row {
			if !validCost(v) {
				return nil, fmt.Errorf("cost(%q,%q)=%g: %w", symbols[r], symbols[c], v, ErrBadMatrix)
			}
			flat[r*n+c] = v
		}
	}

	return &Matrix{alphabet: symbols, index: index, costs: flat}, nil
}

// ReadMatrix decodes a YAML substitution matrix (see package doc) from r.
func ReadMatrix(r io.Reader) (*Matrix, error) {
	var f matrixFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %v: %w", err, ErrBadMatrix)
	}

	return NewMatrix(f.Alphabet, f.Costs)
}

// LoadMatrix reads a YAML substitution matrix from the file at path.
func LoadMatrix(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Alphabet returns a copy of the matrix symbols in definition order.
func (m *Matrix) Alphabet() []rune {
	out := make([]rune, len(m.alphabet))
	copy(out, m.alphabet)

	return out
}

// Lookup returns cost(a, b), or ErrUnknownSymbol if either rune is outside
// the alphabet.
func (m *Matrix) Lookup(a, b rune) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownSymbol)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownSymbol)
	}

	return m.costs[i*len(m.alphabet)+j], nil
}

// Cost satisfies CostFunc[rune]. Pairs outside the alphabet yield NaN, which
// the alignment engine reports as align.ErrInvalidCost on first use.
func (m *Matrix) Cost(a, b rune) float64 {
	v, err := m.Lookup(a, b)
	if err != nil {
		return math.NaN()
	}

	return v
}
