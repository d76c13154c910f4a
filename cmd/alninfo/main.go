// 7 Oct 2026
// Read a multiple sequence alignment and write consensus sequences and
// information content.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/andrew-torda/alninfo/pkg/report"
	. "github.com/andrew-torda/alninfo/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile [outfile]]")
	long := `Given no arguments, read and write from stdin / stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags report.CmdFlag
	var infile, outfile string
	log.SetFlags(0)
	log.SetPrefix(path.Base(os.Args[0]) + ": ")

	if err := report.LoadEnv(&flags); err != nil {
		log.Println(err)
		os.Exit(ExitUsageError)
	}
	flag.StringVar(&flags.Ambiguous, "a", flags.Ambiguous, "ambiguous character for the consensus")
	flag.Float64Var(&flags.LogBase, "b", flags.LogBase, "base for logarithms")
	flag.BoolVar(&flags.Counts, "c", false, "frequency file has counts")
	flag.StringVar(&flags.Freqs, "e", "", "expected frequencies, A:0.3,C:0.2,...")
	flag.StringVar(&flags.FreqFile, "f", "", "file with expected frequencies")
	flag.StringVar(&flags.Ignore, "i", "", "residues to ignore")
	flag.Float64Var(&flags.PseudoCount, "k", flags.PseudoCount, "pseudo count")
	flag.BoolVar(&flags.RequireMultiple, "m", false, "need more than one residue for a consensus")
	flag.BoolVar(&flags.PSSM, "p", false, "write a position specific score matrix")
	flag.StringVar(&flags.RepSeq, "r", "", "representative sequence, default is the first")
	flag.BoolVar(&flags.Replace, "s", false, "write replacement counts")
	flag.Float64Var(&flags.Threshold, "t", flags.Threshold, "threshold for the consensus")
	flag.BoolVar(&flags.Time, "time", false, "print out timing information")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}
	if flag.NArg() > 2 {
		usage()
		os.Exit(ExitUsageError)
	}

	if err := report.Mymain(&flags, infile, outfile); err != nil {
		log.Println(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
