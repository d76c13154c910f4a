package seq_test

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/alninfo/pkg/seq/common"
	. "github.com/andrew-torda/alninfo/pkg/seq"
	"github.com/google/go-cmp/cmp"
)

const (
	big       = 64 * 1024
	bigminus1 = big - 1
	bigplus1  = big + 1
)

var seq_lengths = []int{10, 30, bigminus1, big, bigplus1}

func cmmtHelp(got, want string, t *testing.T) {
	if got != want {
		t.Fatalf("checking comments wanted \"%s\" got \"%s\"", want, got)
	}
}

// TestComment is to check that comments are read correctly
func TestComment(t *testing.T) {
	c0 := "testcomment no space"
	c1 := " testcomment with space at start"
	s := "aaa\n"
	seqs := ">" + c0 + "\n" + s + ">" + c1 + "\n" + s
	var seqgrp SeqGrp

	if err := ReadFasta(strings.NewReader(seqs), &seqgrp, &Options{}); err != nil {
		t.Fatal("bust reading simple seqs in TestComment", err)
	}
	slc := seqgrp.SeqSlc()
	cmmtHelp(slc[0].GetCmmt(), c0, t)
	cmmtHelp(slc[1].GetCmmt(), strings.TrimSpace(c1), t)
}

// TestDiffLen checks if we can read sequences of different lengths
func TestDiffLen(t *testing.T) {
	s := `>s1
a
> s2
aa
> s3
aa-a`
	var seqgrp SeqGrp
	s_opts := &Options{DiffLenSeq: true}

	if err := ReadFasta(strings.NewReader(s), &seqgrp, s_opts); err != nil {
		t.Fatal("Reading seqs failed", err)
	}
	if ngot := seqgrp.NSeq(); ngot != 3 {
		t.Fatalf("Seqs of diff length got %d wanted 3 seqs", ngot)
	}
	for i := 0; i < 3; i++ {
		if l := seqgrp.SeqSlc()[i].Len(); l != i+1 {
			t.Fatalf("seqs diff length got %d wanted %d", l, i+1)
		}
	}
	if n := seqgrp.AlnLen(); n != 3 {
		t.Fatal("AlnLen got", n, "want 3")
	}
}

func TestBrokenSeq(t *testing.T) {
	s := `> s1
abc
> s2 there is no sequence next`
	var seqgrp SeqGrp
	if err := ReadFasta(strings.NewReader(s), &seqgrp, &Options{}); err == nil {
		t.Fatal("incomplete sequence did not break")
	}
}

// writeTest_with_spaces provides some sequences with different patterns of
// white space and some gap characters mixed in.
func writeTest_with_spaces(f_tmp io.Writer) {
	const b byte = 'B'
	for i, l := range seq_lengths {
		fmt.Fprintln(f_tmp, "> seq", i)
		for j := 0; j < l; j++ {
			switch {
			case j%11 == 1:
				fmt.Fprint(f_tmp, " ")
			case j%73 == 1:
				fmt.Fprint(f_tmp, "\n")
			case j%71 == 1:
				fmt.Fprint(f_tmp, "-")
			}
			fmt.Fprint(f_tmp, string(b))
		}
		fmt.Fprint(f_tmp, "\n")
	}
}

// writeTest_nospaces has no spaces so as to check if we correctly
// handle long lines.
func writeTest_nospaces(f_tmp io.Writer) {
	for _, i := range seq_lengths {
		fmt.Fprintln(f_tmp, "> seq", i+1, ">>")
		fmt.Fprintln(f_tmp, strings.Repeat("A", i))
	}
}

// innerWriteReadSeqs writes and then reads sequences from a file, so
// the file gets mapped.
func innerWriteReadSeqs(t *testing.T, spaces bool) {
	var b strings.Builder
	if spaces {
		writeTest_with_spaces(&b)
	} else {
		writeTest_nospaces(&b)
	}
	fname, err := common.WrtTemp(b.String())
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)

	s_opts := &Options{DiffLenSeq: true}
	seqgrp, err := Readfile(fname, s_opts)
	if err != nil {
		t.Fatal("Reading seqs failed", err)
	}
	if seqgrp.NSeq() != len(seq_lengths) {
		t.Fatalf("Wrote %d seqs, but read only %d. Spaces was %t",
			len(seq_lengths), seqgrp.NSeq(), spaces)
	}
	for i, s := range seqgrp.SeqSlc() {
		if s.Len() != seq_lengths[i] {
			t.Fatalf("Seq length expected %d, got %d", seq_lengths[i], s.Len())
		}
	}
}

// TestReadFasta once with white space and once with long lines
func TestReadFasta(t *testing.T) {
	innerWriteReadSeqs(t, false)
	innerWriteReadSeqs(t, true)
}

// TestEmpty checks that broken files are gracefully handled
func TestEmpty(t *testing.T) {
	bad_contents := []string{
		"> blah\n",
		"",
		"rubbish",
	}
	for _, content := range bad_contents {
		fname, err := common.WrtTemp(content)
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fname)
		if _, err := Readfile(fname, &Options{}); err == nil {
			t.Fatalf("should generate error on %q", content)
		}
	}
	if _, err := Readfile("/does/not/exist", nil); err == nil {
		t.Fatal("missing file did not give an error")
	}
}

// TestErrorOnDiffSeqs should provoke the error when we expect sequences
// to be the same length, but they are not.
func TestErrorOnDiffSeqs(t *testing.T) {
	texts := []string{
		"> seq1\naaaa\n> seq 2\naaaaa",
		"> seq1\naaaaa\n> seq 2\naaaa",
	}
	var s_opts = &Options{KeepGaps: true}
	for _, txt := range texts {
		var seqgrp SeqGrp
		if err := ReadFasta(strings.NewReader(txt), &seqgrp, s_opts); err == nil {
			t.Fatal("Should provoke error on uneven sequences")
		}
	}
}

func TestWeights(t *testing.T) {
	s := "> a weight=0.5\nGTATC\n> b\nAT--C\n>c x weight=2 y\nCTGTC\n"
	var seqgrp SeqGrp
	if err := ReadFasta(strings.NewReader(s), &seqgrp, &Options{KeepGaps: true}); err != nil {
		t.Fatal(err)
	}
	var got []float64
	for _, s := range seqgrp.SeqSlc() {
		got = append(got, s.Weight())
	}
	if diff := cmp.Diff([]float64{0.5, 1, 2}, got); diff != "" {
		t.Fatal("weights (-want +got)\n", diff)
	}
	for _, bad := range []string{"weight=x", "weight=-1", "weight=NaN", "weight=+Inf"} {
		var seqgrp SeqGrp
		txt := "> s " + bad + "\nACGT\n"
		if err := ReadFasta(strings.NewReader(txt), &seqgrp, nil); err == nil {
			t.Fatal("should have failed on", bad)
		}
	}
}

// TestZeroWeight checks a sequence can be left out by giving it no weight.
func TestZeroWeight(t *testing.T) {
	var seqgrp SeqGrp
	s := "> a weight=0\nACGT\n> b\nACGT\n"
	if err := ReadFasta(strings.NewReader(s), &seqgrp, nil); err != nil {
		t.Fatal(err)
	}
	if w := seqgrp.SeqSlc()[0].Weight(); w != 0 {
		t.Fatal("weight=0 read as", w)
	}
	if err := seqgrp.SetWeight(1, 0); err != nil {
		t.Fatal(err)
	}
	if err := seqgrp.SetWeight(1, -0.5); err == nil {
		t.Fatal("negative weight should be an error")
	}
}

func TestGapsDropped(t *testing.T) {
	var seqgrp SeqGrp
	if err := ReadFasta(strings.NewReader("> a\nAC-GT\n"), &seqgrp, &Options{}); err != nil {
		t.Fatal(err)
	}
	if s := string(seqgrp.SeqSlc()[0].GetSeq()); s != "ACGT" {
		t.Fatal("gaps not removed, got", s)
	}
}

var alphadata = []struct {
	s1   string
	want Alphabet
}{
	{"> seq1\nACGT-ACGT\n> seq 2\n ACGT", UnambiguousDNA},
	{"> seq1\nACGT-ACGT\n> seq 2\n acgt", GenericDNA},
	{"> seq1\naaa\n>seq 2\nACGT-ACG\nT", GenericDNA},
	{"> s1\n A C    \nG-U\n>s2\nAAAA", UnambiguousRNA},
	{"> s1\n a c    \ng-U\n>s2\naaaa", GenericRNA},
	{"> s\nacgu\n>ss\nACGT\n\n", SingleLetter},
	{"> s1\nef", GenericProtein},
	{"> s1\nEF", ProteinAlpha},
	{"> s1\nB", SingleLetter},
	{"> s1\njb\n>s2\nO", SingleLetter},
	{"> s1\nACGN\n>s2\nACGT", AmbiguousDNA},
	{"> s1\nACG.\n>s2\nACGT", UnambiguousDNA},
	{"> s1\nACGZ\n>s2\nACGT", GenericDNA},
	{"> s1\nACDX\n>s2\nACDE", ExtendedProtein},
	{"> s1\nACD*\n>s2\nACDE", GenericProtein},
}

// TestGuess checks the code for recognising RNA/DNA/Protein/whatever types.
func TestGuess(t *testing.T) {
	s_opts := &Options{KeepGaps: true, DiffLenSeq: true}
	for tnum, x := range alphadata {
		var seqgrp SeqGrp
		if err := ReadFasta(strings.NewReader(x.s1), &seqgrp, s_opts); err != nil {
			t.Fatal("TestGuess broke on ReadFasta", err)
		}
		want := x.want.Gapped(common.GapChar)
		if got := seqgrp.Alphabet(); got != want {
			t.Fatalf("seq num %d got alphabet %v expected %v", tnum, got, want)
		}
	}
}

func TestAllLetters(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"GTATC", "AT--C", "CTGTC"})
	if got := string(seqgrp.AllLetters()); got != "-ACGT" {
		t.Fatal("declared alphabet letters, got", got)
	}
	seqgrp.SetAlphabet(SingleLetter)
	if got := string(seqgrp.AllLetters()); got != "-ACGT" {
		t.Fatal("generic alphabet letters, got", got)
	}
	seqgrp = Str2SeqGrp([]string{"xyz", "x.z"})
	seqgrp.SetAlphabet(SingleLetter)
	if got := string(seqgrp.AllLetters()); got != "-xyz" {
		t.Fatal("used letters, got", got)
	}
}

// TestGuessCovers checks the guessed alphabet accepts every symbol
// that was used, and that pads become gaps.
func TestGuessCovers(t *testing.T) {
	cases := []struct {
		aln  []string
		want Alphabet
	}{
		{[]string{"ACGN", "ACGT"}, AmbiguousDNA},
		{[]string{"ACG.", "ACGT"}, UnambiguousDNA},
		{[]string{"ACDX", "ACDE"}, ExtendedProtein},
		{[]string{"ACGU", "ACGN"}, AmbiguousRNA},
	}
	for _, c := range cases {
		seqgrp := Str2SeqGrp(c.aln)
		a := seqgrp.Alphabet()
		if a != c.want.Gapped(common.GapChar) {
			t.Fatalf("%v guessed %v want %v", c.aln, a, c.want)
		}
		for _, sym := range seqgrp.SymUsed() {
			if !a.Valid(sym) {
				t.Fatalf("%v: alphabet %v rejects %q", c.aln, a, sym)
			}
		}
	}
	if s := string(Str2SeqGrp([]string{"AC.G"}).SeqSlc()[0].GetSeq()); s != "AC-G" {
		t.Fatal("pad not turned into gap, got", s)
	}
	var seqgrp SeqGrp
	if err := ReadFasta(strings.NewReader("> a\nAC.G\n"), &seqgrp, nil); err != nil {
		t.Fatal(err)
	}
	if s := string(seqgrp.SeqSlc()[0].GetSeq()); s != "ACG" {
		t.Fatal("pad should be dropped like a gap, got", s)
	}
}

func TestExtended(t *testing.T) {
	steps := []struct{ in, want Alphabet }{
		{UnambiguousDNA, AmbiguousDNA},
		{AmbiguousDNA, GenericDNA},
		{UnambiguousRNA, AmbiguousRNA},
		{ProteinAlpha, ExtendedProtein},
		{ExtendedProtein, GenericProtein},
	}
	for _, s := range steps {
		got, ok := s.in.Gapped('-').Extended()
		if !ok || got != s.want.Gapped('-') {
			t.Fatalf("Extended(%v) got %v want %v", s.in, got, s.want)
		}
	}
	if _, ok := GenericDNA.Extended(); ok {
		t.Fatal("generic alphabet should not extend")
	}
	if !ProteinAlpha.Valid('W') || ProteinAlpha.Valid('X') || !ExtendedProtein.Valid('X') {
		t.Fatal("protein letters wrong")
	}
}

func TestUpper(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"acgt", "AcGt"})
	if err := seqgrp.Upper(); err != nil {
		t.Fatal(err)
	}
	for _, s := range seqgrp.SeqSlc() {
		if string(s.GetSeq()) != "ACGT" {
			t.Fatal("Upper got", string(s.GetSeq()))
		}
	}
	bad := Str2SeqGrp([]string{"ac\xffg"})
	if err := bad.Upper(); err == nil {
		t.Fatal("non-ascii symbol should be an error")
	}
}

func TestWriteFasta(t *testing.T) {
	var sb strings.Builder
	long := strings.Repeat("A", 61)
	seqs := []Seq{NewSeq("one", []byte(long)), NewSeq("empty", nil)}
	if err := WriteFasta(&sb, seqs, nil); err != nil {
		t.Fatal(err)
	}
	want := ">one\n" + long[:60] + "\nA\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Fatal("fasta output (-want +got)\n", diff)
	}
}
