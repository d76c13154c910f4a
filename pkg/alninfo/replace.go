// 3 Oct 2026

package alninfo

import (
	"fmt"
	"sort"

	"github.com/andrew-torda/alninfo/pkg/seq"
)

// Pair is an ordered pair of residues. (A, C) and (C, A) are different.
type Pair struct {
	A, B byte
}

// ReplaceDict holds the weighted number of times residue A was
// aligned against residue B.
type ReplaceDict map[Pair]float64

// Get returns the count for a pair, zero if it is not there.
func (d ReplaceDict) Get(a, b byte) float64 { return d[Pair{a, b}] }

// Total is the sum over all pairs.
func (d ReplaceDict) Total() float64 {
	var t float64
	for _, v := range d {
		t += v
	}
	return t
}

// Pairs returns the keys, sorted.
func (d ReplaceDict) Pairs() []Pair {
	p := make([]Pair, 0, len(d))
	for k := range d {
		p = append(p, k)
	}
	sort.Slice(p, func(i, j int) bool {
		if p[i].A != p[j].A {
			return p[i].A < p[j].A
		}
		return p[i].B < p[j].B
	})
	return p
}

// ReplacementDict counts, for every pair of sequences, how often each
// residue is aligned with each other residue. Each observation adds the
// product of the two sequence weights. Given
//
//	GTATC  0.5
//	AT--C  0.8
//	CTGTC  1.0
//
// the first column adds 0.4 to (G, A), 0.5 to (G, C) and 0.8 to (A, C).
// Residues in skip, and the alignment's gap character, are not counted.
// If the second of a pair of sequences is shorter, we stop at its end.
func (s *Summary) ReplacementDict(skip []byte) (ReplaceDict, error) {
	dict, skip := s.baseReplacements(skip)
	seqs := s.seqgrp.SeqSlc()
	for i := range seqs {
		for j := i + 1; j < len(seqs); j++ {
			if err := s.pairReplacement(seqs[i], seqs[j], dict, skip); err != nil {
				return nil, err
			}
		}
	}
	return dict, nil
}

// baseReplacements makes a dictionary with a zero for every pair of
// letters in the alignment. It returns the full list of things to skip.
func (s *Summary) baseReplacements(skip []byte) (ReplaceDict, []byte) {
	skip = append([]byte(nil), skip...)
	if g := s.seqgrp.Alphabet().Gap; g != 0 {
		skip = append(skip, g)
	}
	letters := without(s.seqgrp.AllLetters(), skip)
	dict := make(ReplaceDict, len(letters)*len(letters))
	for _, a := range letters {
		for _, b := range letters {
			dict[Pair{a, b}] = 0
		}
	}
	return dict, skip
}

// pairReplacement adds the replacements between two sequences to dict.
func (s *Summary) pairReplacement(s1, s2 seq.Seq, dict ReplaceDict, skip []byte) error {
	w := s1.Weight() * s2.Weight()
	t := s2.GetSeq()
	for n, r1 := range s1.GetSeq() {
		if n >= len(t) {
			break
		}
		r2 := t[n]
		if contains(skip, r1) || contains(skip, r2) {
			continue
		}
		p := Pair{r1, r2}
		if _, ok := dict[p]; !ok {
			return fmt.Errorf("residues %q, %q: %w",
				r1, r2, &ResidueError{Residue: missing(dict, r1, r2), Context: s.seqgrp.Alphabet().String()})
		}
		dict[p] += w
	}
	return nil
}

// missing says which of a pair is not in the dictionary.
func missing(dict ReplaceDict, a, b byte) byte {
	if _, ok := dict[Pair{a, a}]; !ok {
		return a
	}
	return b
}
