package cpu

import (
	"iter"

	"github.com/ezrec/helix/codon"
)

// Program is an assembled strand, with its source listing.
type Program struct {
	Opcodes []Opcode
}

// Opcode is the codons emitted by a single line of assembly.
type Opcode struct {
	LineNo int          // Source line number.
	Ip     int          // Strand index of the first codon.
	Words  []string     // Source words, after substitution.
	Codons codon.Strand // Emitted codons.
	Links  []Link       // Label references to resolve.
}

// Link is a label reference in one of an opcode's operands.
type Link struct {
	Index  int    // Codon within Opcode.Codons to patch.
	Label  string // Target label.
	Adjust int    // Added to the label offset.
	Signed bool   // Encode as a signed value.
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode containing the codon at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codons) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Strand returns the assembled program text.
func (prog *Program) Strand() (strand codon.Strand) {
	strand = codon.Strand{}
	for _, c := range prog.Codons() {
		strand = append(strand, c)
	}

	return
}

// Codons iterates over every codon of the program, with its index.
func (prog *Program) Codons() iter.Seq2[int, codon.Codon] {
	return func(yield func(ip int, c codon.Codon) bool) {
		for _, op := range prog.Opcodes {
			for n, c := range op.Codons {
				if !yield(op.Ip+n, c) {
					return
				}
			}
		}
	}
}
