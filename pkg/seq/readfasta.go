// Reader for fasta format files.

package seq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	. "github.com/andrew-torda/alninfo/pkg/seq/common"
	"github.com/andrew-torda/alninfo/pkg/white"
)

const cmmtChar = '>' // and this introduces comments in fasta format

// weightTag in a comment line sets the weight of a sequence, as in
//
//	> seq1 some comment weight=0.5
const weightTag = "weight="

type lexer struct {
	scnr   *bufio.Scanner
	seqgrp *SeqGrp
	opts   *Options
	cmmt   string // comment of the sequence being read
	seq    []byte // partial sequence
	lineno int
	err    error
}

type stateFn func(*lexer) stateFn

// gstart skips anything before the first comment line.
func gstart(l *lexer) stateFn {
	for l.scnr.Scan() {
		l.lineno++
		line := l.scnr.Bytes()
		if len(line) > 0 && line[0] == cmmtChar {
			l.cmmt = string(line[1:])
			return gseq
		}
		if white.Remove(&line); len(line) != 0 {
			l.err = fmt.Errorf("line %d: expected \"%c\" before sequence", l.lineno, cmmtChar)
			return nil
		}
	}
	return nil
}

// gseq collects sequence lines until the next comment or the end.
func gseq(l *lexer) stateFn {
	for l.scnr.Scan() {
		l.lineno++
		line := l.scnr.Bytes()
		if len(line) > 0 && line[0] == cmmtChar {
			if l.finish(); l.err != nil {
				return nil
			}
			l.cmmt = string(line[1:])
			return gseq
		}
		white.Remove(&line)
		padToGap(line)
		if !l.opts.KeepGaps {
			line = dropGaps(line)
		}
		l.seq = append(l.seq, line...)
	}
	l.finish()
	return nil
}

// dropGaps removes gap characters, in place.
func dropGaps(b []byte) []byte {
	t := b[:0]
	for _, c := range b {
		if c != GapChar {
			t = append(t, c)
		}
	}
	return t
}

// finish stores the sequence we have been reading.
func (l *lexer) finish() {
	if len(l.seq) == 0 {
		l.err = errors.New("Zero length sequence after " + trimStr(l.cmmt, 40))
		return
	}
	s := NewSeq(strings.TrimSpace(l.cmmt), l.seq)
	if w, ok, err := findWeight(l.cmmt); err != nil {
		l.err = fmt.Errorf("line %d: %w", l.lineno, err)
		return
	} else if ok {
		s.weight = w
	}
	l.seqgrp.seqs = append(l.seqgrp.seqs, s)
	l.cmmt = ""
	l.seq = nil
}

// findWeight looks for a weight=x token in a comment.
func findWeight(cmmt string) (float64, bool, error) {
	for _, f := range strings.Fields(cmmt) {
		if !strings.HasPrefix(f, weightTag) {
			continue
		}
		w, err := strconv.ParseFloat(f[len(weightTag):], 64)
		if err != nil {
			return 0, false, fmt.Errorf("bad sequence weight %q: %w", f, err)
		}
		if err := checkWeight(w); err != nil {
			return 0, false, fmt.Errorf("sequence %q: %w", f, err)
		}
		return w, true, nil
	}
	return 0, false, nil
}

// ReadFasta reads fasta formatted sequences into seqgrp. Pad symbols
// "." are read as gaps. Unless told otherwise by s_opts, it then guesses
// the alphabet.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	if s_opts == nil {
		s_opts = &Options{}
	}
	const maxLine = 64 * 1024 * 1024
	scnr := bufio.NewScanner(rdr)
	scnr.Buffer(make([]byte, 0, 64*1024), maxLine)
	l := lexer{scnr: scnr, seqgrp: seqgrp, opts: s_opts}

	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return l.err
	}
	if err := scnr.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if seqgrp.NSeq() == 0 {
		return errNoSeqs
	}
	if s_opts.Upper {
		if err := seqgrp.Upper(); err != nil {
			return err
		}
	}
	if s_opts.KeepGaps && !s_opts.DiffLenSeq {
		if err := seqgrp.checkLengths(); err != nil {
			return err
		}
	}
	if s_opts.Alphabet != nil {
		seqgrp.alpha = *s_opts.Alphabet
	} else {
		seqgrp.alpha = seqgrp.GuessAlphabet().Gapped(GapChar)
	}
	seqgrp.usedKnwn = false
	return nil
}
