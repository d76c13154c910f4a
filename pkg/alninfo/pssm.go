// 3 Oct 2026

package alninfo

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/alninfo/pkg/seq"
	"github.com/andrew-torda/matrix"
)

// PSSM is a position specific score matrix. For each column of the
// alignment it has a residue for the axis (usually the consensus) and
// the weighted count of every letter.
// Counts are summed in float64 so that many small weights add up
// properly. Profile gives the float32 matrix of frequencies.
type PSSM struct {
	axis    []byte
	letters []byte           // sorted
	index   [seq.MaxSym]int8 // index['C'] is the column for C, or -1
	counts  [][]float64      // counts[pos][col]
}

// PSSM builds a position specific score matrix. If axis is nil, the
// default DumbConsensus goes on the axis. Otherwise it must be as long as
// the alignment. Residues in ignore and the alignment's gap character are
// not counted.
func (s *Summary) PSSM(axis []byte, ignore []byte) (*PSSM, error) {
	alnLen := s.seqgrp.AlnLen()
	ignore = append([]byte(nil), ignore...)
	if g := s.seqgrp.Alphabet().Gap; g != 0 {
		ignore = append(ignore, g)
	}
	letters := without(s.seqgrp.AllLetters(), ignore)
	if len(letters) == 0 {
		return nil, configErr("no letters left to count in the alignment")
	}

	if axis == nil {
		cons, err := s.DumbConsensus(nil)
		if err != nil {
			return nil, err
		}
		axis = cons.GetSeq()
	} else if len(axis) != alnLen {
		return nil, configErr("axis sequence length %d, alignment length %d", len(axis), alnLen)
	}

	p := newPSSM(append([]byte(nil), axis...), letters)
	for n := 0; n < alnLen; n++ {
		row := p.counts[n]
		for _, ss := range s.seqgrp.SeqSlc() {
			c, ok := ss.At(n)
			if !ok || contains(ignore, c) {
				continue
			}
			i := p.col(c)
			if i < 0 {
				return nil, fmt.Errorf("column %d: %w", n,
					&ResidueError{Residue: c, Context: s.seqgrp.Alphabet().String()})
			}
			row[i] += ss.Weight()
		}
	}
	return p, nil
}

func newPSSM(axis, letters []byte) *PSSM {
	p := &PSSM{axis: axis, letters: letters}
	for i := range p.index {
		p.index[i] = -1
	}
	for i, c := range letters {
		p.index[c] = int8(i)
	}
	nl := len(letters)
	back := make([]float64, len(axis)*nl)
	p.counts = make([][]float64, len(axis))
	for n := range p.counts {
		p.counts[n] = back[n*nl : (n+1)*nl : (n+1)*nl]
	}
	return p
}

// col returns which column of the matrix holds residue c, or -1.
func (p *PSSM) col(c byte) int {
	if c >= seq.MaxSym {
		return -1
	}
	return int(p.index[c])
}

// Len is the number of positions.
func (p *PSSM) Len() int { return len(p.axis) }

// Letters are the residues counted, sorted.
func (p *PSSM) Letters() []byte { return append([]byte(nil), p.letters...) }

// Residue returns the axis residue at position pos.
func (p *PSSM) Residue(pos int) byte { return p.axis[pos] }

// Column returns the count of each letter at position pos.
func (p *PSSM) Column(pos int) map[byte]float64 {
	m := make(map[byte]float64, len(p.letters))
	for i, c := range p.letters {
		m[c] = p.counts[pos][i]
	}
	return m
}

// Count returns the count of letter c at position pos. If c is not one
// of the letters, ok is false.
func (p *PSSM) Count(pos int, c byte) (f float64, ok bool) {
	i := p.col(c)
	if i < 0 {
		return 0, false
	}
	return p.counts[pos][i], true
}

// Profile returns the counts as frequencies, one row per position and one
// column per letter. A row where nothing was counted stays zero.
func (p *PSSM) Profile() *matrix.FMatrix2d {
	prof := matrix.NewFMatrix2d(len(p.axis), len(p.letters))
	for n, row := range p.counts {
		var tot float64
		for _, v := range row {
			tot += v
		}
		if tot == 0 {
			continue
		}
		for i, v := range row {
			prof.Mat[n][i] = float32(v / tot)
		}
	}
	return prof
}

// String lays out the matrix as a table, letters across the top and
// one row per position, starting with the axis residue.
//
//	    A   C   G   T
//	X  1.0 1.0 1.0 0.0
//	T  0.0 0.0 0.0 3.0
func (p *PSSM) String() string {
	var b strings.Builder
	b.WriteByte(' ')
	for _, c := range p.letters {
		fmt.Fprintf(&b, "   %c", c)
	}
	b.WriteByte('\n')
	for n, a := range p.axis {
		fmt.Fprintf(&b, "%c ", a)
		for i := range p.letters {
			fmt.Fprintf(&b, " %.1f", p.counts[n][i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
