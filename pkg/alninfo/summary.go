// 2 Oct 2026

// Package alninfo calculates summary information about a multiple
// sequence alignment: consensus sequences, counts of residue
// replacements, position specific score matrices and the information
// content of each column.
//
// Everything works one column at a time. Sequences that are shorter
// than the alignment are treated as absent from the columns they do
// not reach.
package alninfo

import (
	"bytes"
	"sync"

	"github.com/andrew-torda/alninfo/pkg/seq"
)

// Expected random frequencies for a 20-letter protein and
// a 4-letter nucleotide alphabet.
const (
	Protein20Random   = 0.05
	Nucleotide4Random = 0.25
)

// FreqTable gives the expected background frequency of residues.
// Gap characters have no expected frequency.
type FreqTable interface {
	Freq(c byte) (float64, bool)
	Letters() []byte
}

// Summary calculates information about an alignment. Apart from
// InformationContent, which remembers its last result, the methods do
// not change anything and may be called from several goroutines.
type Summary struct {
	seqgrp *seq.SeqGrp

	mu       sync.Mutex
	icVector []float64
	icStart  int
}

// NewSummary prepares to calculate information on an alignment.
func NewSummary(seqgrp *seq.SeqGrp) *Summary {
	seqgrp.SetSymUsed() // so later lookups only read
	return &Summary{seqgrp: seqgrp}
}

// SeqGrp returns the alignment we are working on.
func (s *Summary) SeqGrp() *seq.SeqGrp { return s.seqgrp }

// ICVector returns a copy of the per-column information content from the
// most recent call to InformationContent, and the column it starts at.
// Before any call, it is empty.
func (s *Summary) ICVector() ([]float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.icVector...), s.icStart
}

// setIC replaces the remembered information content.
func (s *Summary) setIC(v []float64, start int) {
	s.mu.Lock()
	s.icVector = append([]float64(nil), v...)
	s.icStart = start
	s.mu.Unlock()
}

// gapChar is the alignment's gap character, or "-" if the alphabet
// does not say.
func (s *Summary) gapChar() byte {
	if g := s.seqgrp.Alphabet().Gap; g != 0 {
		return g
	}
	return '-'
}

// without returns letters with everything in drop removed.
func without(letters, drop []byte) []byte {
	var r []byte
	for _, c := range letters {
		if !contains(drop, c) {
			r = append(r, c)
		}
	}
	return r
}

func contains(b []byte, c byte) bool { return bytes.IndexByte(b, c) != -1 }
