package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/helix/codon"
)

// Operation is a strand access performed by an instruction.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OPERATION_MUTATE    = Operation(0) // mutate
	OPERATION_DELETE    = Operation(1) // delete
	OPERATION_INSERT    = Operation(2) // insert
	OPERATION_DUPLICATE = Operation(3) // duplicate
	OPERATION_TRANSPOSE = Operation(4) // transpose
	OPERATION_REVERSE   = Operation(5) // reverse
	OPERATION_LOAD      = Operation(6) // load
	OPERATION_STORE     = Operation(7) // store
)

// Halt is the reason the cpu stopped.
type Halt int

//go:generate go tool stringer -linecomment -type=Halt
const (
	HALT_NONE    = Halt(0) // running
	HALT_STOP    = Halt(1) // stop
	HALT_END     = Halt(2) // end
	HALT_INVALID = Halt(3) // invalid
)

// Register holds a single raw codon, or nothing.
type Register struct {
	Codon codon.Codon
	Valid bool
}

// Set the register.
func (reg *Register) Set(c codon.Codon) {
	reg.Codon = c
	reg.Valid = true
}

// Get the register value, failing if it was never set.
func (reg *Register) Get() (c codon.Codon, err error) {
	if !reg.Valid {
		err = ErrUninitializedRegister
		return
	}
	c = reg.Codon
	return
}

// Reset the register to unset.
func (reg *Register) Reset() {
	*reg = Register{}
}

func (reg Register) String() string {
	if !reg.Valid {
		return "---"
	}
	return string(reg.Codon)
}

// Instruction is a fetched opcode with its operand codons.
type Instruction struct {
	Ip       int          // Index of the opcode; the base of all offsets.
	Op       codon.Opcode // Decoded opcode.
	Operands []codon.Codon
}

// Number decodes operand n with the signedness of the opcode.
func (inst Instruction) Number(n int) (value int, err error) {
	kinds := inst.Op.Operands()
	return codon.ToNumber(inst.Operands[n], kinds[n].Signed())
}

// Len is the number of codons the instruction occupies.
func (inst Instruction) Len() int {
	return 1 + len(inst.Operands)
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	words := []string{strings.ToLower(inst.Op.String())}
	kinds := inst.Op.Operands()
	for n, arg := range inst.Operands {
		if n < len(kinds) && kinds[n] != codon.OPERAND_CODON {
			value, err := inst.Number(n)
			if err == nil {
				words = append(words, fmt.Sprintf("%d", value))
				continue
			}
		}
		words = append(words, string(arg))
	}
	return strings.Join(words, " ")
}
