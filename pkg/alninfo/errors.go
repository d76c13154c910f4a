package alninfo

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is a bad parameter: a negative pseudo count, a range
	// outside the alignment, an axis sequence of the wrong length.
	ErrConfig = errors.New("invalid parameter")

	// ErrResidueNotInAlphabet means a residue turned up which is not in
	// the alphabet or frequency table we were given.
	ErrResidueNotInAlphabet = errors.New("residue not in alphabet")

	// ErrAlphabetInference means sequences in an alignment disagree
	// about their alphabet, so we cannot pick one for a consensus.
	// It always comes wrapped together with ErrConfig.
	ErrAlphabetInference = errors.New("incompatible alphabets")

	// ErrNoAmbiguityCode means a set of bases has no IUPAC code.
	ErrNoAmbiguityCode = errors.New("no IUPAC ambiguity code")
)

// ResidueError says which residue was unexpected and where.
type ResidueError struct {
	Residue byte
	Context string // what we were doing, or which alphabet we expected
}

func (e *ResidueError) Error() string {
	return fmt.Sprintf("residue %q not found in %s", e.Residue, e.Context)
}

func (e *ResidueError) Unwrap() error { return ErrResidueNotInAlphabet }

// configErr wraps ErrConfig with a message.
func configErr(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, a...))
}
