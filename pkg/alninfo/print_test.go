package alninfo_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/andrew-torda/alninfo/pkg/alninfo"
	"github.com/andrew-torda/alninfo/pkg/seq"
	"github.com/google/go-cmp/cmp"
)

func TestPrintInfoContent(t *testing.T) {
	summ := NewSummary(seq.Str2SeqGrp(smallAln))
	var b strings.Builder
	if err := PrintInfoContent(&b, summ, 0); err != nil {
		t.Fatal(err)
	}
	want := "0 G 0.415\n1 T 2.000\n2 A 0.277\n3 T 0.943\n4 C 2.000\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Fatal("info content (-want +got)\n", diff)
	}

	// A partial range is remembered and printed from where it starts.
	if _, err := summ.InformationContent(&ICOpts{Start: 1, End: 3}); err != nil {
		t.Fatal(err)
	}
	b.Reset()
	if err := PrintInfoContent(&b, summ, 2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("1 T 2.000\n2 G 0.277\n", b.String()); diff != "" {
		t.Fatal("partial range (-want +got)\n", diff)
	}
}

func TestPrintBadRep(t *testing.T) {
	summ := NewSummary(seq.Str2SeqGrp([]string{"AC", "A"}))
	var b strings.Builder
	for _, rep := range []int{-1, 2} {
		if err := PrintInfoContent(&b, summ, rep); !errors.Is(err, ErrConfig) {
			t.Fatalf("representative %d should fail, got %v", rep, err)
		}
	}
	if err := PrintInfoContent(&b, summ, 1); !errors.Is(err, ErrConfig) {
		t.Fatal("short representative should fail, got", err)
	}
}
