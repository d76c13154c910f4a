// 7 Oct 2026

// Package report reads an alignment, calculates consensus sequences,
// information content and optionally a PSSM and replacement counts, and
// writes them all out as one text report. The sections are introduced
// by lines starting with "#".
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/alninfo/pkg/alninfo"
	"github.com/andrew-torda/alninfo/pkg/freqtable"
	"github.com/andrew-torda/alninfo/pkg/seq"
)

// CmdFlag holds the choices from the command line. Fields with an env
// tag may also be set from the environment by LoadEnv.
type CmdFlag struct {
	Threshold       float64 `env:"ALNINFO_THRESHOLD" envDefault:"0.7"` // fraction needed for a majority
	Ambiguous       string  `env:"ALNINFO_AMBIGUOUS" envDefault:"X"`   // single character for no winner
	PseudoCount     float64 `env:"ALNINFO_PSEUDO"`                     // for information content
	LogBase         float64 `env:"ALNINFO_LOGBASE" envDefault:"2"`     // 2 gives bits
	Freqs           string  // expected frequencies as A:0.3,C:0.2,...
	FreqFile        string  // or read them from a file
	Counts          bool    // FreqFile has counts, not frequencies
	Ignore          string  // residues not to count
	RepSeq          string  // representative sequence, found in comments. Default is the first
	RequireMultiple bool    // columns with one residue get the ambiguous character
	PSSM            bool    // write a position specific score matrix
	Replace         bool    // write replacement counts
	Time            bool    // print out run time
}

// LoadEnv fills in flags from ALNINFO_ environment variables, or the
// defaults if they are not set. Call it before parsing the command
// line so flags win.
func LoadEnv(flags *CmdFlag) error {
	if err := env.Parse(flags); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// loadTable gets expected frequencies from a string or a file. With
// neither, the result is nil and the alphabet decides.
func loadTable(flags *CmdFlag) (alninfo.FreqTable, error) {
	switch {
	case flags.Freqs != "" && flags.FreqFile != "":
		return nil, errors.New("give frequencies as a string or a file, not both")
	case flags.Freqs != "":
		t, err := freqtable.Parse(flags.Freqs)
		if err != nil {
			return nil, fmt.Errorf("expected frequencies: %w", err)
		}
		return t, nil
	case flags.FreqFile != "":
		fp, err := os.Open(flags.FreqFile)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		t, err := freqtable.Read(fp, flags.Counts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", flags.FreqFile, err)
		}
		return t, nil
	}
	return nil, nil
}

type consFunc func(*alninfo.ConsensusOpts) (seq.Seq, error)

type variant struct {
	name string
	f    consFunc
}

// consensusAll calculates the consensus variants at the same time.
// An IUPAC column with no code is not fatal. The variant is dropped and
// we return a warning.
func consensusAll(summ *alninfo.Summary, opts *alninfo.ConsensusOpts) ([]seq.Seq, []string, error) {
	variants := []variant{
		{"dumb", summ.DumbConsensus},
		{"gap", summ.GapConsensus},
	}
	if summ.SeqGrp().Alphabet().Kind == seq.DNA {
		variants = append(variants,
			variant{"iupac", summ.IupacConsensus},
			variant{"gap iupac", summ.GapIupacConsensus})
	}
	res := make([]seq.Seq, len(variants))
	warn := make([]string, len(variants))
	var g errgroup.Group
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			s, err := v.f(opts)
			switch {
			case errors.Is(err, alninfo.ErrNoAmbiguityCode):
				warn[i] = fmt.Sprintf("Warning, no %s consensus: %v", v.name, err)
				return nil
			case err != nil:
				return fmt.Errorf("%s consensus: %w", v.name, err)
			}
			res[i] = seq.NewSeq(v.name+" consensus", s.GetSeq())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	var warnings []string
	for _, w := range warn {
		if w != "" {
			warnings = append(warnings, w)
		}
	}
	return res, warnings, nil
}

// section writes a heading line.
func section(w io.Writer, name string) error {
	_, err := fmt.Fprintln(w, "#", name)
	return err
}

// writeReplace writes one line per pair of residues.
func writeReplace(w io.Writer, dict alninfo.ReplaceDict) error {
	for _, p := range dict.Pairs() {
		if _, err := fmt.Fprintf(w, "%c %c %.3f\n", p.A, p.B, dict[p]); err != nil {
			return err
		}
	}
	return nil
}

// Mymain reads the alignment from infile and writes the report to
// outfile. Empty names or "-" mean standard input and output.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() {
			fmt.Fprintln(os.Stderr, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	if len(flags.Ambiguous) > 1 {
		return fmt.Errorf("ambiguous character must be one symbol, got %q", flags.Ambiguous)
	}
	copts := &alninfo.ConsensusOpts{
		Threshold:       flags.Threshold,
		RequireMultiple: flags.RequireMultiple,
	}
	if flags.Ambiguous != "" {
		copts.Ambiguous = flags.Ambiguous[0]
	}
	table, err := loadTable(flags)
	if err != nil {
		return err
	}

	s_opts := &seq.Options{KeepGaps: true, DiffLenSeq: true, Upper: true}
	seqgrp, err := seq.Readfile(infile, s_opts)
	if err != nil {
		return fmt.Errorf("Fail reading sequences: %w", err)
	}
	rep := 0
	if flags.RepSeq != "" {
		if rep = seqgrp.FindNdx(flags.RepSeq); rep == -1 {
			return fmt.Errorf(`Cannot find representative sequence "%s"`, flags.RepSeq)
		}
	}
	ignore := []byte(strings.ToUpper(flags.Ignore))

	summ := alninfo.NewSummary(seqgrp)
	cons, warnings, err := consensusAll(summ, copts)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	icopts := &alninfo.ICOpts{
		FreqTable:   table,
		LogBase:     flags.LogBase,
		Ignore:      ignore,
		PseudoCount: flags.PseudoCount,
	}
	if _, err := summ.InformationContent(icopts); err != nil {
		return fmt.Errorf("information content: %w", err)
	}

	var fp io.Writer = os.Stdout
	if outfile != "" && outfile != "-" {
		warnExists(outfile)
		f, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer f.Close()
		fp = f
	}

	if err := section(fp, "consensus"); err != nil {
		return err
	}
	if err := seq.WriteFasta(fp, cons, nil); err != nil {
		return err
	}
	if err := section(fp, "information content"); err != nil {
		return err
	}
	if err := alninfo.PrintInfoContent(fp, summ, rep); err != nil {
		return err
	}
	if flags.PSSM {
		pssm, err := summ.PSSM(cons[0].GetSeq(), ignore)
		if err != nil {
			return fmt.Errorf("pssm: %w", err)
		}
		if err := section(fp, "pssm"); err != nil {
			return err
		}
		if _, err := io.WriteString(fp, pssm.String()); err != nil {
			return err
		}
	}
	if flags.Replace {
		dict, err := summ.ReplacementDict(ignore)
		if err != nil {
			return fmt.Errorf("replacements: %w", err)
		}
		if err := section(fp, "replacements"); err != nil {
			return err
		}
		if err := writeReplace(fp, dict); err != nil {
			return err
		}
	}
	return nil
}
