// 23 Feb 2018
// read a table of expected frequencies

package freqtable

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// CmmtScanner is a wrapper around bufio.Scanner that will ignore anything
// after a comment character and remove leading and trailing white space.
type CmmtScanner struct {
	*bufio.Scanner
	cmmt byte // Comment character
}

// NewCmmtScanner is a wrapper around scanner, but
//   - jumps over blank lines
//   - removes leading spaces
//   - removes anything after a comment character
func NewCmmtScanner(r io.Reader, cmmt byte) *CmmtScanner {
	return &CmmtScanner{bufio.NewScanner(r), cmmt}
}

// CBytes presents exactly the same interface as scanner.Bytes, but
// has to do a bit more work.
// Before returning, we remove anything after the comment symbol and
// strip leading and trailing white space.
// If this leaves us with an empty string, we call Scan again.
// Like the Bytes function, this works directly in the i/o buffer.
func (s *CmmtScanner) CBytes() []byte {
	ok := true
	for b := s.Bytes(); ok; ok, b = s.Scan(), s.Bytes() {
		if i := bytes.IndexByte(b, s.cmmt); i != -1 {
			b = b[:i]
		}
		if b = bytes.TrimSpace(b); len(b) > 0 {
			return b
		}
	}
	return nil
}

// Read reads lines of "symbol value". If counts is true, the values
// are counts and get normalised, otherwise they must be frequencies.
//
//	# background for an AT rich genome
//	A 0.35
//	T 0.35
//	C 0.15
//	G 0.15
func Read(r io.Reader, counts bool) (*Table, error) {
	m := make(map[byte]float64)
	scnr := NewCmmtScanner(r, '#')
	nline := 0
	for scnr.Scan() {
		line := scnr.CBytes()
		if line == nil {
			break
		}
		nline++
		f := bytes.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("frequency table entry %d: want 2 fields, got %q", nline, line)
		}
		if err := addEntry(m, string(f[0]), string(f[1])); err != nil {
			return nil, fmt.Errorf("frequency table entry %d: %w", nline, err)
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, fmt.Errorf("reading frequency table: %w", err)
	}
	if counts {
		return FromCounts(m)
	}
	return New(m)
}
