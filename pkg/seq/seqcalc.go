// 6 Apr 2020
// seqcalc does simple, common calculations on a set of sequences.
// The functions have to live in this package, since they
// need access to the internals of a sequence

package seq

import (
	"sort"

	"github.com/andrew-torda/alninfo/pkg/seq/common"
)

// SetSymUsed fills out the bool slice which says whether or not a
// symbol was used.
func (seqgrp *SeqGrp) SetSymUsed() {
	for i := range seqgrp.symUsed {
		seqgrp.symUsed[i] = false
	}
	for _, ss := range seqgrp.seqs {
		for _, c := range ss.GetSeq() {
			if c < MaxSym {
				seqgrp.symUsed[c] = true
			}
		}
	}
	seqgrp.usedKnwn = true
}

// SymUsed returns the list of symbols used, in sorted order.
func (seqgrp *SeqGrp) SymUsed() []byte {
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	var used []byte
	for c, b := range seqgrp.symUsed {
		if b {
			used = append(used, byte(c))
		}
	}
	return used
}

// GuessAlphabet looks at a set of sequences and returns its best guess
// as to the alphabet. Case does not matter for deciding the kind, but
// the letters of the result must cover every symbol used, so a
// sequence with an N in it gets ambiguous DNA and lower case gets a
// generic alphabet. We never guess a gap.
func (seqgrp *SeqGrp) GuessAlphabet() Alphabet {
	return seqgrp.fitAlphabet(seqgrp.guessKind())
}

// guessKind picks the strictest alphabet of the kind the symbols
// suggest.
func (seqgrp *SeqGrp) guessKind() Alphabet {
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	protType := []byte{
		'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
		'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}

	u := seqgrp.symUsed
	used := func(c byte) bool { return u[c] || u[c+('a'-'A')] }
	for _, c := range protType { // If we see an amino acid code,
		if used(c) { //             just return protein type.
			return ProteinAlpha
		}
	}
	if used('T') && used('U') {
		return SingleLetter
	}
	if used('U') {
		return UnambiguousRNA
	}
	if used('A') || used('C') || used('G') || used('T') {
		return UnambiguousDNA
	}
	return SingleLetter
}

// fitAlphabet moves to more permissive alphabets of the same kind until
// every symbol used, apart from gaps, is valid.
func (seqgrp *SeqGrp) fitAlphabet(a Alphabet) Alphabet {
	for _, c := range seqgrp.SymUsed() {
		for !common.IsGap(c) && !a.Valid(c) {
			next, ok := a.Extended()
			if !ok {
				break
			}
			a = next
		}
	}
	return a
}

// padToGap replaces the pad symbol by the gap character, in place.
func padToGap(b []byte) {
	for i, c := range b {
		if c == common.PadChar {
			b[i] = common.GapChar
		}
	}
}

// AllLetters returns the letters we expect to see in the alignment.
// If the alphabet is generic, this is just the set of symbols that
// were really used. Otherwise it is the alphabet's letters, with the
// gap character on the end if there is one.
func (seqgrp *SeqGrp) AllLetters() []byte {
	a := seqgrp.alpha
	if a.Generic() {
		return seqgrp.SymUsed()
	}
	all := []byte(a.Letters)
	if a.Gap != 0 {
		all = append(all, a.Gap)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// ColumnCounts counts how many of each symbol appear at column n,
// skipping anything for which skip returns true. Sequences that are too
// short to reach column n do not contribute. The second value is the
// number of symbols that were counted.
func (seqgrp *SeqGrp) ColumnCounts(n int, skip func(byte) bool) (map[byte]int, int) {
	counts := make(map[byte]int)
	var total int
	for _, s := range seqgrp.seqs {
		c, ok := s.At(n)
		if !ok || (skip != nil && skip(c)) {
			continue
		}
		counts[c]++
		total++
	}
	return counts, total
}
