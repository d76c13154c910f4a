// 15 May 2025
// We are given a multiple sequence alignment.
// For each sequence, write a line for a spreadsheet with the
// sequence id, its length in the alignment, the number of residues
// without gaps and its weight.

package seqlen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andrew-torda/alninfo/pkg/seq"
	"github.com/andrew-torda/alninfo/pkg/seq/common"
)

// CmdArgs are the command line arguments after parsing.
type CmdArgs struct {
	InSeqFname  string // input alignment
	OutCntFname string // csv output, empty or "-" for standard output
	IgnrSeqLen  bool   // do not insist that sequences are the same length
}

// nongap counts the residues that are not gaps.
func nongap(s []byte) int {
	n := 0
	for _, c := range s {
		if !common.IsGap(c) {
			n++
		}
	}
	return n
}

// seqID is the first word of the comment.
func seqID(cmmt string) string {
	if f := strings.Fields(cmmt); len(f) > 0 {
		return f[0]
	}
	return ""
}

// WriteLens writes the csv table for a group of sequences.
func WriteLens(w io.Writer, seqgrp *seq.SeqGrp) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "length", "residues", "weight"}); err != nil {
		return err
	}
	for _, s := range seqgrp.SeqSlc() {
		rec := []string{
			seqID(s.GetCmmt()),
			strconv.Itoa(s.Len()),
			strconv.Itoa(nongap(s.GetSeq())),
			strconv.FormatFloat(s.Weight(), 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Mymain reads the sequences and writes the table.
func Mymain(args CmdArgs) error {
	s_opts := &seq.Options{KeepGaps: true, DiffLenSeq: args.IgnrSeqLen}
	seqgrp, err := seq.Readfile(args.InSeqFname, s_opts)
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if args.OutCntFname != "" && args.OutCntFname != "-" {
		fp, err := os.Create(args.OutCntFname)
		if err != nil {
			return fmt.Errorf("output file %v: %w", args.OutCntFname, err)
		}
		defer fp.Close()
		w = fp
	}
	return WriteLens(w, seqgrp)
}
