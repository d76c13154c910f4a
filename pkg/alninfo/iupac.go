package alninfo

import "fmt"

// iupacCode maps a sorted set of DNA bases to its IUPAC ambiguity code.
// Four bases are handled by the caller, since they are always N.
var iupacCode = map[string]byte{
	"AC":  'M',
	"AG":  'R',
	"AT":  'W',
	"CG":  'S',
	"CT":  'Y',
	"GT":  'K',
	"ACG": 'V',
	"ACT": 'H',
	"AGT": 'D',
	"CGT": 'B',
}

// ambiguityCode returns the code for a sorted set of upper case bases.
func ambiguityCode(set []byte) (byte, error) {
	if c, ok := iupacCode[string(set)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w for %q", ErrNoAmbiguityCode, set)
}
