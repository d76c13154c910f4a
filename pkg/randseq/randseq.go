// 31 July 2020

// Package randseq makes random alignments, for testing and benchmarks.
package randseq

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/andrew-torda/alninfo/pkg/seq"
	"github.com/andrew-torda/alninfo/pkg/seq/common"
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed    int64     // random number seed
	Wrtr     io.Writer // where we write to
	Cmmt     string    // Comment for the sequences
	Nseq     int       // number of sequences
	Len      int       // Length of sequences
	NoGap    bool      // Do not add gaps
	Protein  bool      // protein rather than DNA
	Weighted bool      // give sequences random weights
	VarLen   bool      // chop a random amount off the end of each sequence
}

const gapOdds = 8 // roughly one symbol in gapOdds is a gap

func alphabet(args *RandSeqArgs) seq.Alphabet {
	if args.Protein {
		return seq.ProteinAlpha.Gapped(common.GapChar)
	}
	return seq.UnambiguousDNA.Gapped(common.GapChar)
}

// getseq returns a byte slice with a random sequence in it
func getseq(n int, letters []byte, noGap bool, rnd *rand.Rand) []byte {
	ret := make([]byte, n)
	for i := range ret {
		if !noGap && rnd.Intn(gapOdds) == 0 {
			ret[i] = common.GapChar
		} else {
			ret[i] = letters[rnd.Intn(len(letters))]
		}
	}
	return ret
}

// RandSeqGrp returns a random alignment.
func RandSeqGrp(args *RandSeqArgs) (*seq.SeqGrp, error) {
	rnd := rand.New(rand.NewSource(args.Iseed))
	alpha := alphabet(args)
	letters := []byte(alpha.Letters)
	width := len(fmt.Sprintf("%d", args.Nseq))
	seqgrp := seq.NewSeqGrp(alpha)
	for i := 0; i < args.Nseq; i++ {
		n := args.Len
		if args.VarLen && n > 0 {
			n -= rnd.Intn(n/2 + 1)
		}
		cmmt := fmt.Sprintf("%s %0*d", args.Cmmt, width, i+1)
		var w float64 = 1
		if args.Weighted {
			w = 0.5 + 1.5*rnd.Float64()
			cmmt += fmt.Sprintf(" weight=%.4f", w)
		}
		seqgrp.Add(seq.NewSeq(cmmt, getseq(n, letters, args.NoGap, rnd)))
		if err := seqgrp.SetWeight(i, w); err != nil {
			return nil, err
		}
	}
	return seqgrp, nil
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Nseq < 1 || args.Len < 1 {
		return fmt.Errorf("need at least one sequence of length one, got %d of %d", args.Nseq, args.Len)
	}
	seqgrp, err := RandSeqGrp(args)
	if err != nil {
		return err
	}
	return seq.WriteFasta(args.Wrtr, seqgrp.SeqSlc(), nil)
}
