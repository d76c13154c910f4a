package seqlen_test

import (
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/alninfo/pkg/seqlen"
	"github.com/andrew-torda/alninfo/pkg/seq"
	"github.com/andrew-torda/alninfo/pkg/seq/common"
	"github.com/google/go-cmp/cmp"
)

const aln = `> gene1 some species weight=0.5
AC-GT
> gene2
A.--T
`

func TestWriteLens(t *testing.T) {
	var seqgrp seq.SeqGrp
	if err := seq.ReadFasta(strings.NewReader(aln), &seqgrp, &seq.Options{KeepGaps: true}); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := WriteLens(&b, &seqgrp); err != nil {
		t.Fatal(err)
	}
	want := "id,length,residues,weight\ngene1,5,4,0.5\ngene2,5,2,1\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Fatal("table (-want +got)\n", diff)
	}
}

func TestMymain(t *testing.T) {
	ragged := aln + "> gene3\nAC\n"
	fname, err := common.WrtTemp(ragged)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if err := Mymain(CmdArgs{InSeqFname: fname, OutCntFname: os.DevNull}); err == nil {
		t.Fatal("different lengths should fail")
	}
	if err := Mymain(CmdArgs{InSeqFname: fname, OutCntFname: os.DevNull, IgnrSeqLen: true}); err != nil {
		t.Fatal(err)
	}
}
