package codon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		valid bool
	}){
		{"ATG", true},
		{"ATC", true},
		{"TAG", true},
		{"GAT", true},
		{"atg", true},
		{"aTg", true},
		{"GFT", false},
		{"ATX", false},
		{"ATCG", false},
		{"AT", false},
		{"", false},
	}

	for _, entry := range table {
		assert.Equal(entry.valid, IsValid(entry.text), entry.text)
		assert.Equal(entry.valid, Codon(entry.text).Valid(), entry.text)
	}
}

func TestToNumber(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		codon    Codon
		unsigned int
		signed   int
	}){
		{"AAA", 0, 0},
		{"AAC", 1, 1},
		{"AAT", 3, 3},
		{"ACA", 4, 4},
		{"CAA", 16, 16},
		{"CTT", 31, 31},
		{"GAA", 32, -32},
		{"TTT", 63, -1},
		{"TTG", 62, -2},
		{"ttg", 62, -2},
	}

	for _, entry := range table {
		value, err := ToNumber(entry.codon, false)
		assert.NoError(err)
		assert.Equal(entry.unsigned, value, entry.codon)

		value, err = ToNumber(entry.codon, true)
		assert.NoError(err)
		assert.Equal(entry.signed, value, entry.codon)
	}

	for _, bad := range []Codon{"", "AT", "ATCG", "AXA", "A A"} {
		_, err := ToNumber(bad, false)
		assert.ErrorIs(err, ErrInvalidCodon, bad)
		assert.Equal(ErrCodon(bad), err)
	}
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for n := 0; n <= UNSIGNED_MAX; n++ {
		c, err := FromNumber(n, false)
		assert.NoError(err)
		value, err := ToNumber(c, false)
		assert.NoError(err)
		assert.Equal(n, value)
	}

	for n := SIGNED_MIN; n <= SIGNED_MAX; n++ {
		c, err := FromNumber(n, true)
		assert.NoError(err)
		value, err := ToNumber(c, true)
		assert.NoError(err)
		assert.Equal(n, value)
	}
}

func TestFromNumber(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value  int
		signed bool
		codon  Codon
	}){
		{-3, true, "TTC"},
		{20, false, "CCA"},
		{10, false, "AGG"},
		{-11, true, "TCC"},
		{54, false, "TCG"},
		{63, false, "TTT"},
		{0, true, "AAA"},
	}

	for _, entry := range table {
		c, err := FromNumber(entry.value, entry.signed)
		assert.NoError(err)
		assert.Equal(entry.codon, c, entry.value)
	}

	for _, bad := range [](struct {
		value  int
		signed bool
	}){
		{64, false},
		{-1, false},
		{-33, true},
		{32, true},
	} {
		_, err := FromNumber(bad.value, bad.signed)
		assert.ErrorIs(err, ErrOutOfRange, bad.value)
		var rerr ErrRange
		assert.True(errors.As(err, &rerr))
		assert.Equal(bad.value, rerr.Value)
		assert.Equal(bad.signed, rerr.Signed)
	}
}

func TestCharacter(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		char  rune
		value int
	}){
		{'A', 0},
		{'Z', 25},
		{'a', 26},
		{'z', 51},
		{'0', 52},
		{'9', 61},
		{' ', 62},
		{'\n', 63},
	}

	for _, entry := range table {
		value, err := CharacterEncode(entry.char)
		assert.NoError(err)
		assert.Equal(entry.value, value)
	}

	for _, char := range ALPHABET {
		value, err := CharacterEncode(char)
		assert.NoError(err)
		decoded, err := CharacterDecode(value)
		assert.NoError(err)
		assert.Equal(char, decoded)
	}

	for _, bad := range []rune{'!', '\t', 'é', 0} {
		_, err := CharacterEncode(bad)
		assert.ErrorIs(err, ErrUnsupportedCharacter)
	}

	for _, bad := range []int{-1, 64, 100} {
		_, err := CharacterDecode(bad)
		assert.ErrorIs(err, ErrOutOfRange)
	}
}
