package codon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	strand, err := Parse("ATGTGA")
	assert.NoError(err)
	assert.Equal(Strand{"ATG", "TGA"}, strand)
	assert.Equal("ATGTGA", strand.String())

	strand, err = Parse("atgXYZ")
	assert.NoError(err)
	assert.Equal(Strand{"ATG", "XYZ"}, strand)

	strand, err = Parse("")
	assert.NoError(err)
	assert.Equal(0, len(strand))

	for _, bad := range []string{"A", "ATGT", "ATGTG"} {
		_, err = Parse(bad)
		assert.ErrorIs(err, ErrMalformedProgram, bad)
		assert.Equal(ErrLength(len(bad)), err)
	}
}

func TestStrandAccess(t *testing.T) {
	assert := assert.New(t)

	strand := Strand{"AAA", "CCC", "GGG"}

	c, err := strand.At(1)
	assert.NoError(err)
	assert.Equal(Codon("CCC"), c)

	assert.NoError(strand.Set(2, "TTT"))
	assert.Equal(Strand{"AAA", "CCC", "TTT"}, strand)

	for _, index := range []int{-1, 3, 10} {
		_, err = strand.At(index)
		assert.ErrorIs(err, ErrIndexFault)
		err = strand.Set(index, "ACG")
		assert.ErrorIs(err, ErrIndexFault)
	}
	assert.Equal(Strand{"AAA", "CCC", "TTT"}, strand)

	var ierr *ErrIndex
	_, err = strand.At(7)
	assert.True(errors.As(err, &ierr))
	assert.Equal(7, ierr.Index)
	assert.Equal(3, ierr.Len)

	assert.Equal(1, strand.Index("CCC"))
	assert.Equal(-1, strand.Index("ACG"))
}

func TestStrandSplice(t *testing.T) {
	assert := assert.New(t)

	strand := Strand{"AAA", "CCC", "GGG", "TTT"}

	assert.NoError(strand.Insert(1, "ACG", "TGC"))
	assert.Equal(Strand{"AAA", "ACG", "TGC", "CCC", "GGG", "TTT"}, strand)

	assert.NoError(strand.Delete(1, 2))
	assert.Equal(Strand{"AAA", "CCC", "GGG", "TTT"}, strand)

	block, err := strand.Slice(1, 2)
	assert.NoError(err)
	assert.Equal(Strand{"CCC", "GGG"}, block)
	block[0] = "AAA"
	assert.Equal(Codon("CCC"), strand[1])

	assert.NoError(strand.Reverse(1, 3))
	assert.Equal(Strand{"AAA", "TTT", "GGG", "CCC"}, strand)

	// Empty spans are no-ops, wherever they point.
	assert.NoError(strand.Reverse(99, 0))
	assert.NoError(strand.Delete(-5, 0))
	assert.NoError(strand.Insert(99))
	block, err = strand.Slice(42, 0)
	assert.NoError(err)
	assert.Equal(0, len(block))
	assert.Equal(Strand{"AAA", "TTT", "GGG", "CCC"}, strand)

	// Faults leave the strand untouched.
	assert.ErrorIs(strand.Insert(4, "ACG"), ErrIndexFault)
	assert.ErrorIs(strand.Insert(-1, "ACG"), ErrIndexFault)
	assert.ErrorIs(strand.Delete(3, 2), ErrIndexFault)
	assert.ErrorIs(strand.Reverse(2, 3), ErrIndexFault)
	assert.ErrorIs(strand.Delete(1, -1), ErrIndexFault)
	_, err = strand.Slice(-1, 2)
	assert.ErrorIs(err, ErrIndexFault)
	assert.Equal(Strand{"AAA", "TTT", "GGG", "CCC"}, strand)

	clone := strand.Clone()
	clone[0] = "ACG"
	assert.Equal(Codon("AAA"), strand[0])
}
