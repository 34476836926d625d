package codon

import (
	"iter"
	"maps"
)

// Opcode is a Helix instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	// Program control
	OP_START = Opcode(0) // START
	OP_STOP  = Opcode(1) // STOP

	// Self-modification
	OP_MUT = Opcode(2) // MUT
	OP_DEL = Opcode(3) // DEL
	OP_INS = Opcode(4) // INS
	OP_DUP = Opcode(5) // DUP
	OP_TRP = Opcode(6) // TRP
	OP_REV = Opcode(7) // REV

	// Data and arithmetic
	OP_LDI  = Opcode(8)  // LDI
	OP_LD   = Opcode(9)  // LD
	OP_ST   = Opcode(10) // ST
	OP_ADDI = Opcode(11) // ADDI
	OP_CMP  = Opcode(12) // CMP
	OP_SETF = Opcode(13) // SETF

	// I/O
	OP_OUT = Opcode(14) // OUT
	OP_IN  = Opcode(15) // IN
)

// Operand is the interpretation applied to an operand codon.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_CODON    = Operand(0) // codon
	OPERAND_UNSIGNED = Operand(1) // unsigned
	OPERAND_SIGNED   = Operand(2) // signed
)

var (
	raw     = OPERAND_CODON
	u6      = OPERAND_UNSIGNED
	s6      = OPERAND_SIGNED
	opTable = [...]struct {
		codon    Codon
		operands []Operand
	}{
		OP_START: {"ATG", nil},
		OP_STOP:  {"TGA", nil},
		OP_MUT:   {"CAG", []Operand{u6, raw}},
		OP_DEL:   {"CTT", []Operand{u6}},
		OP_INS:   {"CTA", []Operand{u6, raw}},
		OP_DUP:   {"CCA", []Operand{u6, u6}},
		OP_TRP:   {"CCG", []Operand{u6, u6, u6}},
		OP_REV:   {"CCC", []Operand{u6, u6}},
		OP_LDI:   {"AAA", []Operand{raw}},
		OP_LD:    {"AAG", []Operand{s6}},
		OP_ST:    {"AAC", []Operand{s6}},
		OP_ADDI:  {"AAT", []Operand{s6}},
		OP_CMP:   {"ATA", []Operand{raw}},
		OP_SETF:  {"TAT", []Operand{raw}},
		OP_OUT:   {"GTA", nil},
		OP_IN:    {"GAT", nil},
	}
)

var opDecode = map[Codon]Opcode{}
var opDefines = map[string]string{}

func init() {
	for n, entry := range opTable {
		op := Opcode(n)
		opDecode[entry.codon] = op
		opDefines[op.String()] = string(entry.codon)
	}
}

// Decode returns the opcode for a codon, if it is one.
func Decode(c Codon) (op Opcode, ok bool) {
	op, ok = opDecode[Codon(upper(string(c)))]
	return
}

// Valid returns true if the opcode is a member of the instruction set.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opTable)
}

// Codon returns the codon encoding of the opcode.
func (op Opcode) Codon() Codon {
	if !op.Valid() {
		return ""
	}
	return opTable[op].codon
}

// Operands returns the interpretation of each operand codon that
// follows the opcode in the strand.
func (op Opcode) Operands() []Operand {
	if !op.Valid() {
		return nil
	}
	return opTable[op].operands
}

// Signed returns true if the operand is read as a signed number.
func (operand Operand) Signed() bool {
	return operand == OPERAND_SIGNED
}

// Opcodes iterates over the instruction set in encoding order.
func Opcodes() iter.Seq[Opcode] {
	return func(yield func(op Opcode) bool) {
		for n := range opTable {
			if !yield(Opcode(n)) {
				return
			}
		}
	}
}

// Defines maps each opcode mnemonic to its codon.
func Defines() iter.Seq2[string, string] {
	return maps.All(opDefines)
}
