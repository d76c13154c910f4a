// 25 may 2025
// seqlen visits a fasta file and counts the length of each sequence
// after removing gaps.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/alninfo/pkg/seq/common"
	"github.com/andrew-torda/alninfo/pkg/seqlen"
)

func main() {
	uStr := "usage: seqlen [options] [input [output]]"
	var cmdArgs seqlen.CmdArgs
	flag.BoolVar(&cmdArgs.IgnrSeqLen, "i", false, "ignore sequence lengths not being consistent")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, uStr)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Expected at most two arguments. Got", flag.NArg())
		flag.Usage()
		os.Exit(common.ExitUsageError)
	}
	cmdArgs.InSeqFname = flag.Arg(0)
	cmdArgs.OutCntFname = flag.Arg(1)
	if err := seqlen.Mymain(cmdArgs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
