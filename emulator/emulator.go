// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"

	"github.com/ezrec/helix/codon"
	"github.com/ezrec/helix/cpu"
	"github.com/ezrec/helix/internal"
	"github.com/ezrec/helix/io"
)

// Emulator state. CPU + program listing + tape IO channel.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // Tape IO channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		codon.Defines(),
	)
}

// SetStrand replaces the program with raw nucleotide text.
func (emu *Emulator) SetStrand(text string) (err error) {
	strand, err := codon.Parse(text)
	if err != nil {
		return
	}

	emu.Program = &cpu.Program{
		Opcodes: []cpu.Opcode{{Codons: strand}},
	}

	return
}

// Reset loads the program strand into the cpu, and seeks its entry point.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Load(emu.Program.Strand())

	err = emu.Cpu.Reset()

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing opcode.
//
// Once the strand has modified itself, the line number is only a hint.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Ip)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
//
// done is set once the cpu halts. An invalid codon halt is reported
// along with done.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		done = true
		if emu.Cpu.Halt != cpu.HALT_INVALID {
			err = nil
		}
	}

	return
}

// Run ticks the emulator until the cpu halts or faults.
func (emu *Emulator) Run() (halt cpu.Halt, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			break
		}
	}

	halt = emu.Cpu.Halt

	return
}
