package alninfo_test

import (
	"fmt"

	"github.com/andrew-torda/alninfo/pkg/alninfo"
	"github.com/andrew-torda/alninfo/pkg/seq"
)

func ExamplePrintInfoContent() {
	summ := alninfo.NewSummary(seq.Str2SeqGrp([]string{"ACGT", "ACGA", "ACTA"}))
	if err := alninfo.PrintInfoContent(nil, summ, 0); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 0 A 2.000
	// 1 C 2.000
	// 2 G 1.082
	// 3 T 1.082
}

func ExampleSummary_PSSM() {
	summ := alninfo.NewSummary(seq.Str2SeqGrp([]string{"ACGT", "ACGA", "ACTA"}))
	pssm, err := summ.PSSM(nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(pssm)
	// Output:
	//     A   C   G   T
	// A  3.0 0.0 0.0 0.0
	// C  0.0 3.0 0.0 0.0
	// X  0.0 0.0 2.0 1.0
	// X  2.0 0.0 0.0 1.0
}

func ExampleSummary_IupacConsensus() {
	summ := alninfo.NewSummary(seq.Str2SeqGrp([]string{"ACGT", "ACGA", "ACTA"}))
	cons, err := summ.IupacConsensus(nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(cons.GetSeq()))
	// Output: ACKW
}
