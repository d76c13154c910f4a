// 20 Dec 2017

// Package seq provides sequences and groups of aligned sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
//
// A SeqGrp carries an alphabet. Either the caller says what it is,
// or we guess it from the symbols, once, when the group is built.
package seq

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	. "github.com/andrew-torda/alninfo/pkg/seq/common"
)

// Seq is a single sequence with its comment and weight.
type Seq struct {
	cmmt   string
	seq    []byte
	weight float64
	alpha  *Alphabet // nil means use the alphabet of the group
}

// NewSeq makes a sequence with weight 1.
func NewSeq(cmmt string, s []byte) Seq {
	return Seq{cmmt: cmmt, seq: s, weight: 1}
}

// NewSeqAlpha makes a sequence which carries its own alphabet.
func NewSeqAlpha(cmmt string, s []byte, alpha Alphabet) Seq {
	r := NewSeq(cmmt, s)
	r.alpha = &alpha
	return r
}

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s Seq) GetCmmt() string { return s.cmmt }

func (s Seq) Len() int { return len(s.seq) }

// Weight of the sequence. Sequences from NewSeq start with weight 1.
// A weight of zero leaves a sequence out of weighted sums.
func (s Seq) Weight() float64 { return s.weight }

// Alphabet returns the sequence's own alphabet and true, or false
// if it just follows its group.
func (s Seq) Alphabet() (Alphabet, bool) {
	if s.alpha == nil {
		return Alphabet{}, false
	}
	return *s.alpha, true
}

// At returns the symbol at position n. If the sequence is shorter,
// ok is false.
func (s Seq) At(n int) (c byte, ok bool) {
	if n < 0 || n >= len(s.seq) {
		return 0, false
	}
	return s.seq[n], true
}

// SetSeq will replace whatever was the sequence with a new one
func (s *Seq) SetSeq(t []byte) { s.seq = t }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It returns an error if it encounters a symbol it does
// not like (value 128 or higher).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	for i, c := range s.seq {
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			s.seq[i] -= diff
		}
	}
	return nil
}

// String returns a sequence, with its comment at the start as
// a single string
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, s.seq)
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 128
)

// Options contains the choices passed in from the caller when reading.
type Options struct {
	KeepGaps   bool      // Keep gaps upon reading
	DiffLenSeq bool      // false, unless we expect sequences to be different lengths
	Upper      bool      // convert to upper case after reading
	Alphabet   *Alphabet // use this instead of guessing
	DryRun     bool      // Do not write any files
}

// SeqGrp is a group of aligned sequences and the alphabet they
// are written in.
type SeqGrp struct {
	seqs     []Seq
	alpha    Alphabet
	symUsed  [MaxSym]bool // which symbols are actually used
	usedKnwn bool         // Do we know which symbols are used ?
}

// NewSeqGrp makes a group from sequences in a known alphabet.
func NewSeqGrp(alpha Alphabet, seqs ...Seq) *SeqGrp {
	return &SeqGrp{seqs: seqs, alpha: alpha}
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
// The alphabet is guessed from the symbols and is gapped with "-".
// Pad symbols "." become "-".
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		b := []byte(s)
		padToGap(b)
		seqgrp.seqs = append(seqgrp.seqs, NewSeq(fmt.Sprint(base, i), b))
	}
	seqgrp.alpha = seqgrp.GuessAlphabet().Gapped(GapChar)
	return seqgrp
}

// Alphabet is the declared alphabet of the alignment.
func (seqgrp *SeqGrp) Alphabet() Alphabet { return seqgrp.alpha }

// SetAlphabet overrides whatever alphabet we had.
func (seqgrp *SeqGrp) SetAlphabet(a Alphabet) { seqgrp.alpha = a }

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Add appends a sequence to the group.
func (seqgrp *SeqGrp) Add(s Seq) {
	seqgrp.seqs = append(seqgrp.seqs, s)
	seqgrp.usedKnwn = false
}

// SetWeight sets the weight of sequence i. Zero is allowed, negative
// weights are not.
func (seqgrp *SeqGrp) SetWeight(i int, w float64) error {
	if i < 0 || i >= len(seqgrp.seqs) {
		return fmt.Errorf("SetWeight: no sequence %d, have %d", i, len(seqgrp.seqs))
	}
	if err := checkWeight(w); err != nil {
		return fmt.Errorf("SetWeight: %w", err)
	}
	seqgrp.seqs[i].weight = w
	return nil
}

// AlnLen returns the number of columns in the alignment, which is
// the length of the longest sequence.
func (seqgrp *SeqGrp) AlnLen() int {
	n := 0
	for _, s := range seqgrp.seqs {
		if s.Len() > n {
			n = s.Len()
		}
	}
	return n
}

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	seqgrp.usedKnwn = false
	return nil
}

// FindNdx Returns the index of the sequence containing a string.
// Numbering starts from zero. We remove any ">", space or tab at the start.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >	")
	for i, seq := range seqgrp.seqs {
		if strings.Contains(seq.GetCmmt(), s) {
			return i
		}
	}
	return -1
}

// checkLengths is called if sequences should be aligned, so they
// must be the same length.
func (seqgrp *SeqGrp) checkLengths() error {
	const msg = "Sequence lengths are not the same. First sequence length %d, but sequence %d length: %d. Sequence starts %s"
	if len(seqgrp.seqs) == 0 {
		return nil
	}
	iwant := seqgrp.seqs[0].Len()
	for i, s := range seqgrp.seqs[1:] {
		if s.Len() != iwant {
			return fmt.Errorf(msg, iwant, i+1, s.Len(), trimStr(s.GetCmmt(), 40))
		}
	}
	return nil
}

// Readfile takes a filename and reads sequences from it.
// An empty filename means standard input. Regular files are mapped
// into memory rather than read.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	var seqgrp = new(SeqGrp)
	var rdr io.Reader

	if fname == "" || fname == "-" {
		rdr = os.Stdin
	} else {
		fp, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		mm, unmap, err := mapFile(fp)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		defer unmap()
		rdr = mm
	}

	if err := ReadFasta(rdr, seqgrp, s_opts); err != nil {
		return seqgrp, fmt.Errorf("%s: %w", fname, err)
	}
	return seqgrp, nil
}

var errNoSeqs = errors.New("No sequences found")

// checkWeight rejects negative, infinite and NaN weights.
func checkWeight(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("weight must be zero or positive, got %g", w)
	}
	return nil
}

// WriteFasta writes sequences to w, 60 characters per line.
// Empty sequences are skipped.
func WriteFasta(w io.Writer, seqs []Seq, s_opts *Options) error {
	const c_per_line = 60
	if s_opts != nil && s_opts.DryRun {
		w = io.Discard
	}
	for _, seq := range seqs {
		if seq.Len() == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%c%s\n", cmmtChar, seq.GetCmmt()); err != nil {
			return err
		}
		s := seq.GetSeq()
		for ; len(s) > c_per_line; s = s[c_per_line:] {
			if _, err := fmt.Fprintf(w, "%s\n", s[:c_per_line]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", s); err != nil {
			return err
		}
	}
	return nil
}
