// 5 Oct 2026

// Package freqtable holds expected (background) frequencies of residues.
// A table can be built from frequencies or from raw counts, which are
// normalised so they sum to one. Gap characters have no expected
// frequency and are not allowed in a table.
package freqtable

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/andrew-torda/alninfo/pkg/seq/common"
)

// Table maps a residue symbol to its expected frequency.
type Table struct {
	freq map[byte]float64
}

const sumTol = 1e-3 // how far from 1.0 frequencies may sum

var errEmpty = errors.New("frequency table is empty")

// check looks for negative values and gaps.
func check(m map[byte]float64) error {
	if len(m) == 0 {
		return errEmpty
	}
	for c, f := range m {
		if common.IsGap(c) {
			return fmt.Errorf("gap symbol %q cannot have an expected frequency", c)
		}
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("bad frequency %g for %q", f, c)
		}
	}
	return nil
}

// New makes a table from frequencies. They have to add up to one.
func New(m map[byte]float64) (*Table, error) {
	if err := check(m); err != nil {
		return nil, err
	}
	var sum float64
	t := &Table{freq: make(map[byte]float64, len(m))}
	for c, f := range m {
		t.freq[c] = f
		sum += f
	}
	if math.Abs(sum-1) > sumTol {
		return nil, fmt.Errorf("frequencies sum to %g, not 1", sum)
	}
	return t, nil
}

// FromCounts makes a table from counts, dividing each by the total.
func FromCounts(m map[byte]float64) (*Table, error) {
	if err := check(m); err != nil {
		return nil, err
	}
	var sum float64
	for _, n := range m {
		sum += n
	}
	if sum == 0 {
		return nil, errors.New("counts sum to zero")
	}
	t := &Table{freq: make(map[byte]float64, len(m))}
	for c, n := range m {
		t.freq[c] = n / sum
	}
	return t, nil
}

// Freq returns the expected frequency of c and whether c is in the table.
func (t *Table) Freq(c byte) (float64, bool) {
	f, ok := t.freq[c]
	return f, ok
}

// Has says if c is in the table.
func (t *Table) Has(c byte) bool {
	_, ok := t.freq[c]
	return ok
}

// Letters returns the symbols in the table, sorted.
func (t *Table) Letters() []byte {
	l := make([]byte, 0, len(t.freq))
	for c := range t.freq {
		l = append(l, c)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

func (t *Table) String() string {
	var b strings.Builder
	for i, c := range t.Letters() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%c:%g", c, t.freq[c])
	}
	return b.String()
}

// addEntry parses one symbol and its value into m.
func addEntry(m map[byte]float64, sym, val string) error {
	if len(sym) != 1 {
		return fmt.Errorf("expected a single character, got %q", sym)
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("symbol %s: %w", sym, err)
	}
	if _, dup := m[sym[0]]; dup {
		return fmt.Errorf("symbol %s appears twice", sym)
	}
	m[sym[0]] = f
	return nil
}

// Parse reads a table written like "A:0.3,C:0.2,G:0.2,T:0.3".
func Parse(s string) (*Table, error) {
	m := make(map[byte]float64)
	for _, item := range strings.Split(s, ",") {
		sym, val, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("frequency table entry %q is not sym:value", item)
		}
		if err := addEntry(m, strings.TrimSpace(sym), strings.TrimSpace(val)); err != nil {
			return nil, err
		}
	}
	return New(m)
}
