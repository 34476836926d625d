package cpu

import (
	"errors"

	"github.com/ezrec/helix/codon"
	"github.com/ezrec/helix/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrNoEntryPoint          = errors.New(f("no START codon"))
	ErrTruncatedInstruction  = errors.New(f("truncated instruction"))
	ErrUninitializedRegister = errors.New(f("accumulator not set"))
	ErrChannelInvalid        = errors.New(f("channel invalid"))
	ErrHalted                = errors.New(f("halted"))

	// Codon errors, as seen by the cpu
	ErrInvalidCodon         = codon.ErrInvalidCodon
	ErrMalformedProgram     = codon.ErrMalformedProgram
	ErrIndexFault           = codon.ErrIndexFault
	ErrOutOfRange           = codon.ErrOutOfRange
	ErrUnsupportedCharacter = codon.ErrUnsupportedCharacter

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOpcode locates a fault at the instruction that raised it.
type ErrOpcode struct {
	Ip int
	Op codon.Opcode
}

func (eo *ErrOpcode) Error() string {
	return f("%03d: %v", eo.Ip, eo.Op)
}

// ErrTruncated is an instruction whose operands run past the end of the strand.
type ErrTruncated struct {
	Ip   int
	Op   codon.Opcode
	Need int // Operands required.
	Have int // Operands available.
}

func (err *ErrTruncated) Error() string {
	return f("%03d: %v needs %d operands, strand has %d", err.Ip, err.Op, err.Need, err.Have)
}

func (err *ErrTruncated) Unwrap() error {
	return ErrTruncatedInstruction
}

// ErrFault is a strand access fault, naming the operation attempted.
type ErrFault struct {
	Op  Operation
	Err error
}

func (err *ErrFault) Error() string {
	return f("%v: %v", err.Op, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrHalt reports that the cpu has stopped executing.
//
// A halt on an invalid codon also matches ErrInvalidCodon.
type ErrHalt struct {
	Reason Halt
	Ip     int
	Codon  codon.Codon
}

func (err *ErrHalt) Error() string {
	if err.Reason == HALT_INVALID {
		return f("%03d: invalid codon '%v'", err.Ip, string(err.Codon))
	}
	return f("%03d: halted (%v)", err.Ip, err.Reason)
}

func (err *ErrHalt) Unwrap() []error {
	if err.Reason == HALT_INVALID {
		return []error{ErrHalted, ErrInvalidCodon}
	}
	return []error{ErrHalted}
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number or codon", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character of the alphabet", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
