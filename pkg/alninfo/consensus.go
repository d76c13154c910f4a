// 2 Oct 2026
// Consensus sequences, by majority vote or by IUPAC ambiguity codes.

package alninfo

import (
	"fmt"
	"sort"

	"github.com/andrew-torda/alninfo/pkg/seq"
	"github.com/andrew-torda/alninfo/pkg/seq/common"
)

const consensusCmmt = "consensus"

// ConsensusOpts are the choices for building a consensus.
type ConsensusOpts struct {
	Threshold       float64       // fraction the commonest residue needs, majority vote only
	Ambiguous       byte          // placed where there is no clear winner
	Alphabet        *seq.Alphabet // alphabet of the result. nil means guess
	RequireMultiple bool          // a column with only one residue gets Ambiguous
}

// DefaultConsensusOpts has a threshold of 0.7 and X as the ambiguous
// character.
func DefaultConsensusOpts() *ConsensusOpts {
	return &ConsensusOpts{Threshold: 0.7, Ambiguous: 'X'}
}

func fixOpts(opts *ConsensusOpts) *ConsensusOpts {
	if opts == nil {
		return DefaultConsensusOpts()
	}
	if opts.Ambiguous == 0 {
		o := *opts
		o.Ambiguous = 'X'
		return &o
	}
	return opts
}

// DumbConsensus counts the residues in each column, ignoring gaps.
// If one residue type is the commonest and makes up at least
// Threshold of the column, it goes in the consensus. Otherwise, we put
// in the ambiguous character. Sequence weights are not used.
func (s *Summary) DumbConsensus(opts *ConsensusOpts) (seq.Seq, error) {
	return s.majority(fixOpts(opts), common.IsGap)
}

// GapConsensus is like DumbConsensus, but gaps count as residues and
// may appear in the consensus.
func (s *Summary) GapConsensus(opts *ConsensusOpts) (seq.Seq, error) {
	return s.majority(fixOpts(opts), nil)
}

// IupacConsensus ignores counts. Each column gets the IUPAC code for the
// set of bases found there, so a single odd base out of hundreds still
// makes the column ambiguous. Gaps are ignored. This only makes sense
// for DNA. Anything else gives ErrNoAmbiguityCode.
func (s *Summary) IupacConsensus(opts *ConsensusOpts) (seq.Seq, error) {
	return s.iupac(fixOpts(opts), common.IsGap)
}

// GapIupacConsensus is like IupacConsensus, but gaps are counted.
// A column with only gaps gives a gap. A column with gaps and bases has
// no IUPAC code, unless there are four different symbols, which gives N.
func (s *Summary) GapIupacConsensus(opts *ConsensusOpts) (seq.Seq, error) {
	return s.iupac(fixOpts(opts), nil)
}

// majority does the work for the vote-counting consensus.
func (s *Summary) majority(opts *ConsensusOpts, skip func(byte) bool) (seq.Seq, error) {
	alnLen := s.seqgrp.AlnLen()
	consensus := make([]byte, alnLen)
	for n := 0; n < alnLen; n++ {
		counts, nres := s.seqgrp.ColumnCounts(n, skip)
		var maxRes []byte
		maxSize := 0
		for c, k := range counts {
			switch {
			case k > maxSize:
				maxRes = append(maxRes[:0], c)
				maxSize = k
			case k == maxSize:
				maxRes = append(maxRes, c)
			}
		}
		switch {
		case opts.RequireMultiple && nres == 1:
			consensus[n] = opts.Ambiguous
		case len(maxRes) == 1 && float64(maxSize)/float64(nres) >= opts.Threshold:
			consensus[n] = maxRes[0]
		default:
			consensus[n] = opts.Ambiguous
		}
	}
	return s.tagConsensus(consensus, opts, skip == nil)
}

// iupac does the work for the ambiguity code consensus.
func (s *Summary) iupac(opts *ConsensusOpts, skip func(byte) bool) (seq.Seq, error) {
	alnLen := s.seqgrp.AlnLen()
	consensus := make([]byte, alnLen)
	for n := 0; n < alnLen; n++ {
		counts, nres := s.seqgrp.ColumnCounts(n, skip)
		set := distinctUpper(counts)
		switch {
		case opts.RequireMultiple && nres == 1, len(set) == 0:
			consensus[n] = opts.Ambiguous
		case len(set) == 1:
			consensus[n] = set[0]
		case len(set) == 4:
			consensus[n] = 'N'
		default:
			code, err := ambiguityCode(set)
			if err != nil {
				return seq.Seq{}, fmt.Errorf("column %d: %w", n, err)
			}
			consensus[n] = code
		}
	}
	return s.tagConsensus(consensus, opts, skip == nil)
}

// distinctUpper returns the symbols in counts, in upper case, sorted,
// without duplicates.
func distinctUpper(counts map[byte]int) []byte {
	set := make([]byte, 0, len(counts))
	for c := range counts {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if !contains(set, c) {
			set = append(set, c)
		}
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set
}

// tagConsensus wraps the consensus residues up as a sequence in the
// right alphabet.
func (s *Summary) tagConsensus(b []byte, opts *ConsensusOpts, gapped bool) (seq.Seq, error) {
	if opts.Alphabet != nil {
		return seq.NewSeqAlpha(consensusCmmt, b, *opts.Alphabet), nil
	}
	a, err := s.guessConsensusAlphabet(opts.Ambiguous)
	if err != nil {
		return seq.Seq{}, err
	}
	if gapped {
		a = a.Gapped(s.seqgrp.Alphabet().Gap)
	}
	return seq.NewSeqAlpha(consensusCmmt, b, a), nil
}

// guessConsensusAlphabet starts from the ungapped alphabet of the
// alignment and checks the sequences agree with it. If the ambiguous
// character is not allowed, it moves to more permissive alphabets of
// the same kind until it is.
func (s *Summary) guessConsensusAlphabet(ambiguous byte) (seq.Alphabet, error) {
	a := s.seqgrp.Alphabet().Base()
	for i, ss := range s.seqgrp.SeqSlc() {
		sa, ok := ss.Alphabet()
		if !ok || a.Kind == seq.Unknown {
			continue
		}
		if sa.Kind != a.Kind {
			return a, fmt.Errorf("%w: %w: sequence %d is %v, alignment is %v",
				ErrConfig, ErrAlphabetInference, i, sa.Kind, a.Kind)
		}
	}
	for !a.Valid(ambiguous) {
		next, ok := a.Extended()
		if !ok {
			break
		}
		a = next
	}
	return a, nil
}
