package codon

import (
	"strings"
)

// Codon is a three nucleotide word, used both as an opcode and as data.
type Codon string

const (
	UNSIGNED_MAX = 63  // Largest unsigned codon value (TTT).
	SIGNED_MIN   = -32 // Smallest signed codon value (GAA).
	SIGNED_MAX   = 31  // Largest signed codon value (CTT).

	// ALPHABET is the text alphabet, indexed by codon value.
	ALPHABET = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 \n"
)

// nucleotides in digit order.
const nucleotides = "ACGT"

// digit returns the base-4 value of a nucleotide, in either case.
func digit(b byte) (value int, ok bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	}
	return
}

// upper converts ASCII nucleotides to upper case, leaving other bytes alone.
func upper(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' }) < 0 {
		return s
	}
	buf := []byte(s)
	for n, b := range buf {
		if b >= 'a' && b <= 'z' {
			buf[n] = b - 'a' + 'A'
		}
	}
	return string(buf)
}

// IsValid returns true if the string is exactly three nucleotides.
func IsValid(s string) bool {
	if len(s) != 3 {
		return false
	}
	for n := range len(s) {
		if _, ok := digit(s[n]); !ok {
			return false
		}
	}
	return true
}

// Valid returns true if the codon is well formed.
func (c Codon) Valid() bool {
	return IsValid(string(c))
}

// ToNumber interprets a codon as an unsigned value in [0, 63], or if
// signed, as a six bit two's complement value in [-32, 31].
func ToNumber(c Codon, signed bool) (value int, err error) {
	if !c.Valid() {
		err = ErrCodon(c)
		return
	}

	for n := range 3 {
		d, _ := digit(c[n])
		value = (value << 2) | d
	}

	if signed && value > SIGNED_MAX {
		value -= UNSIGNED_MAX + 1
	}

	return
}

// FromNumber is the inverse of ToNumber.
func FromNumber(value int, signed bool) (c Codon, err error) {
	if signed {
		if value < SIGNED_MIN || value > SIGNED_MAX {
			err = ErrRange{Value: value, Signed: true}
			return
		}
		if value < 0 {
			value += UNSIGNED_MAX + 1
		}
	} else if value < 0 || value > UNSIGNED_MAX {
		err = ErrRange{Value: value}
		return
	}

	c = Codon([]byte{
		nucleotides[(value>>4)&3],
		nucleotides[(value>>2)&3],
		nucleotides[(value>>0)&3],
	})

	return
}

// Unsigned returns the unsigned value of the codon.
func (c Codon) Unsigned() (int, error) {
	return ToNumber(c, false)
}

// Signed returns the signed value of the codon.
func (c Codon) Signed() (int, error) {
	return ToNumber(c, true)
}

// CharacterEncode returns the alphabet index of a character.
func CharacterEncode(r rune) (value int, err error) {
	value = strings.IndexRune(ALPHABET, r)
	if value < 0 {
		err = ErrCharacter(r)
	}
	return
}

// CharacterDecode returns the character at an alphabet index.
func CharacterDecode(value int) (r rune, err error) {
	if value < 0 || value >= len(ALPHABET) {
		err = ErrRange{Value: value}
		return
	}
	r = rune(ALPHABET[value])
	return
}
