package codon

import (
	"errors"

	"github.com/ezrec/helix/translate"
)

var f = translate.From

var (
	// Codec errors
	ErrInvalidCodon         = errors.New(f("invalid codon"))
	ErrOutOfRange           = errors.New(f("out of range"))
	ErrUnsupportedCharacter = errors.New(f("unsupported character"))

	// Strand errors
	ErrMalformedProgram = errors.New(f("malformed program"))
	ErrIndexFault       = errors.New(f("index fault"))
)

// ErrCodon is a string that is not a well-formed codon.
type ErrCodon string

func (err ErrCodon) Error() string {
	return f("codon '%v' is not three of A, C, G, T", string(err))
}

func (err ErrCodon) Unwrap() error {
	return ErrInvalidCodon
}

// ErrRange is a number outside of the codon numeric range.
type ErrRange struct {
	Value  int
	Signed bool
}

func (err ErrRange) Error() string {
	if err.Signed {
		return f("%d is not in the signed range [%d, %d]", err.Value, SIGNED_MIN, SIGNED_MAX)
	}
	return f("%d is not in the unsigned range [0, %d]", err.Value, UNSIGNED_MAX)
}

func (err ErrRange) Unwrap() error {
	return ErrOutOfRange
}

// ErrCharacter is a rune that is not in the text alphabet.
type ErrCharacter rune

func (err ErrCharacter) Error() string {
	return f("character %v is not in the alphabet", translate.Rune(rune(err)))
}

func (err ErrCharacter) Unwrap() error {
	return ErrUnsupportedCharacter
}

// ErrLength is a program text length that is not a whole number of codons.
type ErrLength int

func (err ErrLength) Error() string {
	return f("%d nucleotides is not a multiple of 3", int(err))
}

func (err ErrLength) Unwrap() error {
	return ErrMalformedProgram
}

// ErrIndex is an access outside of the bounds of a strand.
type ErrIndex struct {
	Index int // Index that was addressed.
	Len   int // Strand length at the time.
}

func (err *ErrIndex) Error() string {
	return f("index %d outside strand of %d codons", err.Index, err.Len)
}

func (err *ErrIndex) Unwrap() error {
	return ErrIndexFault
}
