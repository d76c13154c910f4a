// 20 April 2020

package seq_test

import (
	"fmt"
	"log"
	"os"

	"github.com/andrew-torda/alninfo/pkg/seq/common"
	. "github.com/andrew-torda/alninfo/pkg/seq"
)

var set1 = `> s1 weight=0.5
GTATC
> s2 weight=0.8
AT--C
> s3
CTGTC`

func ExampleReadfile() {
	f_tmp, err := common.WrtTemp(set1)
	if err != nil {
		log.Fatal("writing testseq")
	}
	defer os.Remove(f_tmp)
	seqgrp, err := Readfile(f_tmp, &Options{KeepGaps: true})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(seqgrp.Alphabet())
	for _, s := range seqgrp.SeqSlc() {
		fmt.Println(s.GetCmmt(), string(s.GetSeq()), s.Weight())
	}
	// Output:
	// DNA [GATC] gap '-'
	// s1 weight=0.5 GTATC 0.5
	// s2 weight=0.8 AT--C 0.8
	// s3 CTGTC 1
}
