// 4 Oct 2026

package alninfo

import (
	"bytes"
	"fmt"
	"math"

	"github.com/andrew-torda/alninfo/pkg/seq"
)

// ICOpts are the choices for InformationContent.
// Columns run from Start up to, not including, End. End of zero always
// means the end of the alignment, so {Start: 3} is column 3 onwards and
// an empty range cannot be asked for.
type ICOpts struct {
	Start, End  int       // half open range of columns
	FreqTable   FreqTable // expected frequencies. nil means random for the alphabet
	LogBase     float64   // base for logarithms. zero means 2, so results are in bits
	Ignore      []byte    // residues not to count
	PseudoCount float64   // added to counts, spread by expected frequency
}

// InfoContent is the information content of a range of columns.
type InfoContent struct {
	Start  int       // first column
	Vector []float64 // Vector[i] is for column Start+i
	Total  float64   // sum over Vector
}

// InformationContent calculates the information content of each column,
//
//	sum over letters  f * log(f / e)
//
// where f is the observed and e the expected frequency of a letter. The
// gap character has no expected frequency and never contributes.
// Frequencies are weighted by sequence weight. If there is a pseudo count
// k, f = (count + e*k) / (total + k).
// The summary remembers the vector from the last call, see ICVector.
func (s *Summary) InformationContent(opts *ICOpts) (*InfoContent, error) {
	var o ICOpts
	if opts != nil {
		o = *opts
	}
	alnLen := s.seqgrp.AlnLen()
	if o.End == 0 {
		o.End = alnLen
	}
	if o.LogBase == 0 {
		o.LogBase = 2
	}
	if o.Start < 0 || o.End > alnLen || o.Start > o.End {
		return nil, configErr("start (%d) and end (%d) are not in the range 0 to %d", o.Start, o.End, alnLen)
	}
	if o.PseudoCount < 0 || math.IsNaN(o.PseudoCount) {
		return nil, configErr("pseudo count must not be negative, got %g", o.PseudoCount)
	}
	if o.LogBase <= 0 || o.LogBase == 1 || math.IsNaN(o.LogBase) {
		return nil, configErr("bad base for logarithms %g", o.LogBase)
	}

	var randomExpected float64
	if o.FreqTable == nil {
		switch s.seqgrp.Alphabet().Kind {
		case seq.Protein:
			randomExpected = Protein20Random
		case seq.DNA, seq.RNA:
			randomExpected = Nucleotide4Random
		default:
			return nil, configErr("alphabet is not nucleotide or protein, supply expected frequencies")
		}
	}

	ic := icCalc{
		letters:  without(s.seqgrp.AllLetters(), o.Ignore),
		ignore:   o.Ignore,
		gap:      s.gapChar(),
		table:    o.FreqTable,
		random:   randomExpected,
		pseudo:   o.PseudoCount,
		logfac:   1 / math.Log(o.LogBase),
		alphaStr: s.seqgrp.Alphabet().String(),
	}
	if err := ic.checkTable(); err != nil {
		return nil, err
	}

	res := &InfoContent{Start: o.Start, Vector: make([]float64, o.End-o.Start)}
	freq := make([]float64, len(ic.letters))
	for n := o.Start; n < o.End; n++ {
		if err := ic.letterFreqs(s.seqgrp, n, freq); err != nil {
			return nil, err
		}
		v := ic.columnInfo(freq)
		res.Vector[n-o.Start] = v
		res.Total += v
	}
	s.setIC(res.Vector, res.Start)
	return res, nil
}

// icCalc carries what we need to work on one column.
type icCalc struct {
	letters  []byte
	ignore   []byte
	gap      byte
	table    FreqTable
	random   float64
	pseudo   float64
	logfac   float64 // to change base of logs
	alphaStr string
}

// expected returns the background frequency of a letter. The gap has none.
func (ic *icCalc) expected(c byte) float64 {
	if c == ic.gap {
		return 0
	}
	if ic.table == nil {
		return ic.random
	}
	f, _ := ic.table.Freq(c)
	return f
}

// checkTable makes sure every letter, apart from the gap, has an
// expected frequency.
func (ic *icCalc) checkTable() error {
	if ic.table == nil {
		return nil
	}
	for _, c := range ic.letters {
		if c == ic.gap {
			continue
		}
		f, ok := ic.table.Freq(c)
		if !ok {
			return fmt.Errorf("letters %q, expected frequency table has %q: %w",
				ic.letters, ic.table.Letters(),
				&ResidueError{Residue: c, Context: "expected frequency table"})
		}
		if f <= 0 {
			return configErr("expected frequency of %q is %g", c, f)
		}
	}
	return nil
}

// letterFreqs fills freq with the frequency of each letter at column n.
// If nothing was counted, all frequencies are zero.
func (ic *icCalc) letterFreqs(seqgrp *seq.SeqGrp, n int, freq []float64) error {
	for i := range freq {
		freq[i] = 0
	}
	var total float64
	for _, ss := range seqgrp.SeqSlc() {
		c, ok := ss.At(n)
		if !ok || contains(ic.ignore, c) {
			continue
		}
		i := bytes.IndexByte(ic.letters, c)
		if i < 0 {
			return fmt.Errorf("column %d: %w", n, &ResidueError{Residue: c, Context: ic.alphaStr})
		}
		w := ss.Weight()
		freq[i] += w
		total += w
	}
	if total == 0 {
		return nil
	}
	for i, c := range ic.letters {
		if ic.pseudo > 0 {
			freq[i] = (freq[i] + ic.expected(c)*ic.pseudo) / (total + ic.pseudo)
		} else {
			freq[i] /= total
		}
	}
	return nil
}

// columnInfo scores one column. Terms where the observed frequency is
// zero, and the gap, add nothing.
func (ic *icCalc) columnInfo(freq []float64) float64 {
	var info float64
	for i, c := range ic.letters {
		if c == ic.gap {
			continue
		}
		f := freq[i]
		if ratio := f / ic.expected(c); ratio > 0 {
			info += f * math.Log(ratio) * ic.logfac
		}
	}
	return info
}
