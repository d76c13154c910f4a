package alninfo

import (
	"fmt"
	"io"
	"os"
)

// PrintInfoContent writes three columns: position, the residue of a
// representative sequence and the information content at that position.
// If the information content has not been calculated, it is, with
// default options. A nil writer means standard output.
func PrintInfoContent(w io.Writer, s *Summary, repRecord int) error {
	if w == nil {
		w = os.Stdout
	}
	ic, start := s.ICVector()
	if len(ic) == 0 {
		res, err := s.InformationContent(nil)
		if err != nil {
			return err
		}
		ic, start = res.Vector, res.Start
	}
	seqs := s.seqgrp.SeqSlc()
	if repRecord < 0 || repRecord >= len(seqs) {
		return configErr("representative sequence %d, but there are %d sequences", repRecord, len(seqs))
	}
	rep := seqs[repRecord]
	for i, v := range ic {
		pos := start + i
		c, ok := rep.At(pos)
		if !ok {
			return configErr("representative sequence %d has no residue at %d", repRecord, pos)
		}
		if _, err := fmt.Fprintf(w, "%d %c %.3f\n", pos, c, v); err != nil {
			return err
		}
	}
	return nil
}
