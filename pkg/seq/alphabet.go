// 2 Oct 2026
// Alphabets say what kind of symbols a sequence is made of.

package seq

import "strings"

// AlphabetKind is the broad class of an alphabet.
type AlphabetKind byte

const (
	Unknown AlphabetKind = iota // anything, no idea what it is
	DNA
	RNA
	Protein
)

func (k AlphabetKind) String() string {
	switch k {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "protein"
	}
	return "unknown"
}

// Alphabet describes the symbols that may appear in a sequence.
// If Letters is empty, the alphabet is generic and any symbol goes.
// If Gap is zero, there is no gap character.
type Alphabet struct {
	Kind    AlphabetKind
	Letters string
	Gap     byte
}

const (
	dnaLetters      = "GATC"
	rnaLetters      = "GAUC"
	ambigNtide      = "RYWSMKHBVDN"
	proteinLetters  = "ACDEFGHIKLMNPQRSTVWY"
	extProteinExtra = "BXZJUO"
)

var (
	UnambiguousDNA  = Alphabet{Kind: DNA, Letters: dnaLetters}
	AmbiguousDNA    = Alphabet{Kind: DNA, Letters: dnaLetters + ambigNtide}
	GenericDNA      = Alphabet{Kind: DNA}
	UnambiguousRNA  = Alphabet{Kind: RNA, Letters: rnaLetters}
	AmbiguousRNA    = Alphabet{Kind: RNA, Letters: rnaLetters + ambigNtide}
	GenericRNA      = Alphabet{Kind: RNA}
	ProteinAlpha    = Alphabet{Kind: Protein, Letters: proteinLetters}
	ExtendedProtein = Alphabet{Kind: Protein, Letters: proteinLetters + extProteinExtra}
	GenericProtein  = Alphabet{Kind: Protein}
	SingleLetter    = Alphabet{Kind: Unknown}
)

// Generic says if any symbol is allowed.
func (a Alphabet) Generic() bool { return a.Letters == "" }

// Gapped returns a copy of the alphabet with gap character c.
func (a Alphabet) Gapped(c byte) Alphabet {
	a.Gap = c
	return a
}

// Base returns the alphabet without its gap character.
func (a Alphabet) Base() Alphabet {
	a.Gap = 0
	return a
}

// Valid says if c is a letter of the alphabet. The gap character
// counts as valid. Generic alphabets accept everything.
func (a Alphabet) Valid(c byte) bool {
	if a.Generic() || (a.Gap != 0 && c == a.Gap) {
		return true
	}
	return strings.IndexByte(a.Letters, c) != -1
}

// Extended returns the next more permissive alphabet of the same kind.
// Unambiguous nucleotides become ambiguous ones, proteins become the
// extended protein alphabet, everything else becomes generic.
// The second return value is false if there is nowhere further to go.
func (a Alphabet) Extended() (Alphabet, bool) {
	switch {
	case a.Generic():
		return a, false
	case a.Letters == dnaLetters:
		return AmbiguousDNA.Gapped(a.Gap), true
	case a.Letters == rnaLetters:
		return AmbiguousRNA.Gapped(a.Gap), true
	case a.Letters == proteinLetters:
		return ExtendedProtein.Gapped(a.Gap), true
	}
	return Alphabet{Kind: a.Kind, Gap: a.Gap}, true
}

func (a Alphabet) String() string {
	s := a.Kind.String()
	if a.Generic() {
		s = "generic " + s
	} else {
		s += " [" + a.Letters + "]"
	}
	if a.Gap != 0 {
		s += " gap '" + string(a.Gap) + "'"
	}
	return s
}
