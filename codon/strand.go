package codon

import (
	"slices"
	"strings"
)

// Strand is an ordered, resizable sequence of codons.
//
// Every accessor checks its indices against the current length and
// reports an *ErrIndex instead of growing or clamping the strand.
// A failed operation leaves the strand unchanged.
type Strand []Codon

// Parse splits nucleotide text into a strand of codons.
//
// The text is upper-cased but not otherwise validated; malformed codons
// are only an error once they are decoded.
func Parse(text string) (strand Strand, err error) {
	if len(text)%3 != 0 {
		err = ErrLength(len(text))
		return
	}

	text = upper(text)
	strand = make(Strand, 0, len(text)/3)
	for n := 0; n < len(text); n += 3 {
		strand = append(strand, Codon(text[n:n+3]))
	}

	return
}

// String returns the nucleotide text of the strand.
func (s Strand) String() string {
	var sb strings.Builder
	sb.Grow(len(s) * 3)
	for _, c := range s {
		sb.WriteString(string(c))
	}
	return sb.String()
}

// Clone returns a copy of the strand.
func (s Strand) Clone() Strand {
	return slices.Clone(s)
}

// Index returns the index of the first instance of c, or -1.
func (s Strand) Index(c Codon) int {
	return slices.Index(s, c)
}

// span checks that [index, index+count) lies within the strand.
// Empty spans address nothing, and are always in bounds.
func (s Strand) span(index, count int) (err error) {
	switch {
	case count == 0:
		return
	case index < 0 || index >= len(s):
		err = &ErrIndex{Index: index, Len: len(s)}
	case count < 0 || index+count > len(s):
		err = &ErrIndex{Index: len(s), Len: len(s)}
	}
	return
}

// At returns the codon at index.
func (s Strand) At(index int) (c Codon, err error) {
	err = s.span(index, 1)
	if err != nil {
		return
	}
	c = s[index]
	return
}

// Set replaces the codon at index.
func (s Strand) Set(index int, c Codon) (err error) {
	err = s.span(index, 1)
	if err != nil {
		return
	}
	s[index] = c
	return
}

// Slice returns a copy of count codons starting at index.
func (s Strand) Slice(index, count int) (out Strand, err error) {
	if count == 0 {
		return
	}
	err = s.span(index, count)
	if err != nil {
		return
	}
	out = slices.Clone(s[index : index+count])
	return
}

// Insert places codons before the existing codon at index.
func (s *Strand) Insert(index int, codons ...Codon) (err error) {
	if len(codons) == 0 {
		return
	}
	err = s.span(index, 1)
	if err != nil {
		return
	}
	*s = slices.Insert(*s, index, codons...)
	return
}

// Delete removes count codons starting at index.
func (s *Strand) Delete(index, count int) (err error) {
	if count == 0 {
		return
	}
	err = s.span(index, count)
	if err != nil {
		return
	}
	*s = slices.Delete(*s, index, index+count)
	return
}

// Reverse reverses the order of count codons starting at index.
func (s Strand) Reverse(index, count int) (err error) {
	if count == 0 {
		return
	}
	err = s.span(index, count)
	if err != nil {
		return
	}
	slices.Reverse(s[index : index+count])
	return
}
