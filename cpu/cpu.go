package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/helix/codon"
	"github.com/ezrec/helix/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"ALPHABET_SIZE": fmt.Sprintf("%d", len(codon.ALPHABET)),
	"CHAR_SPACE":    fmt.Sprintf("%d", len(codon.ALPHABET)-2),
	"CHAR_NEWLINE":  fmt.Sprintf("%d", len(codon.ALPHABET)-1),
}

// Cpu is the execution context for a single Helix strand.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Strand codon.Strand // Program text and data.
	Ip     int          // Current instruction pointer.
	Acc    Register     // Accumulator.
	Flag   bool         // Flag register.
	Halt   Halt         // Reason execution stopped, if it has.

	Ticks int // Instructions executed.

	channel Channel // IN/OUT channel.
	running bool    // An entry point was found.
}

// NewCpu creates a new CPU with an empty strand.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"ip", "acc", "flag", "halt", "len", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%03d", cpu.Ip)
			if cpu.Ip >= 0 && cpu.Ip < len(cpu.Strand) {
				strval += fmt.Sprintf(" [%v]", cpu.Strand[cpu.Ip])
			}
		case "acc":
			strval = cpu.Acc.String()
		case "flag":
			strval = "0"
			if cpu.Flag {
				strval = "1"
			}
		case "halt":
			strval = cpu.Halt.String()
		case "len":
			strval = fmt.Sprintf("%d", len(cpu.Strand))
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// SetChannel sets the channel used by the IN and OUT instructions.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// Load replaces the strand with a copy of the provided strand.
// The cpu must be Reset before it will execute.
func (cpu *Cpu) Load(strand codon.Strand) {
	cpu.Strand = strand.Clone()
	cpu.running = false
}

// Reset the CPU state.
// - Clears the accumulator and flag.
// - Zeros statistics counters.
// - Rewinds the I/O channel.
// - Sets IP to the codon after the first START codon.
func (cpu *Cpu) Reset() (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Acc.Reset()
	cpu.Flag = false
	cpu.Halt = HALT_NONE
	cpu.Ticks = 0
	cpu.Ip = 0
	cpu.running = false

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}

	start := slices.IndexFunc(cpu.Strand, func(c codon.Codon) bool {
		op, ok := codon.Decode(c)
		return ok && op == codon.OP_START
	})
	if start < 0 {
		err = ErrNoEntryPoint
		return
	}

	cpu.Ip = start + 1
	cpu.running = true

	if cpu.Verbose {
		log.Printf("cpu: entry at %03d", cpu.Ip)
	}

	return
}

// Fetch decodes the instruction at IP along with its operands.
func (cpu *Cpu) Fetch() (inst Instruction, err error) {
	if cpu.Ip < 0 || cpu.Ip >= len(cpu.Strand) {
		err = &ErrHalt{Reason: HALT_END, Ip: cpu.Ip}
		return
	}

	c := cpu.Strand[cpu.Ip]
	op, ok := codon.Decode(c)
	if !ok {
		err = &ErrHalt{Reason: HALT_INVALID, Ip: cpu.Ip, Codon: c}
		return
	}

	need := len(op.Operands())
	have := len(cpu.Strand) - (cpu.Ip + 1)
	if have < need {
		err = &ErrTruncated{Ip: cpu.Ip, Op: op, Need: need, Have: have}
		return
	}

	inst = Instruction{
		Ip:       cpu.Ip,
		Op:       op,
		Operands: slices.Clone(cpu.Strand[cpu.Ip+1 : cpu.Ip+1+need]),
	}

	return
}

// Tick executes a single CPU instruction cycle.
//
// Once the cpu halts, Tick returns an *ErrHalt matching ErrHalted, and
// Halt records the reason. Any other error is a fault.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halt != HALT_NONE {
		err = &ErrHalt{Reason: cpu.Halt, Ip: cpu.Ip}
		return
	}

	if !cpu.running {
		err = ErrNoEntryPoint
		return
	}

	defer func() {
		var halt *ErrHalt
		if errors.As(err, &halt) {
			cpu.Halt = halt.Reason
			if cpu.Verbose {
				log.Printf("cpu: %v", halt)
			}
		}
	}()

	inst, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(inst)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Run executes until the cpu halts or faults.
//
// A STOP codon, or running off the end of the strand, returns a nil
// error. An invalid codon returns its *ErrHalt along with HALT_INVALID.
func (cpu *Cpu) Run() (halt Halt, err error) {
	for {
		err = cpu.Tick()
		if err == nil {
			continue
		}
		if errors.Is(err, ErrHalted) {
			halt = cpu.Halt
			if halt != HALT_INVALID {
				err = nil
			}
		}
		return
	}
}

// Execute executes a single decoded instruction, and advances IP past it.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrHalted) {
			err = errors.Join(&ErrOpcode{Ip: inst.Ip, Op: inst.Op}, err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03d: %v", inst.Ip, inst)
	}

	orig := inst.Ip
	args := inst.Operands
	next_ip := orig + inst.Len()

	// fault names the strand operation for an access error.
	fault := func(op Operation, err error) error {
		if err == nil {
			return nil
		}
		return &ErrFault{Op: op, Err: err}
	}

	// numbers decodes all of the numeric operands.
	numbers := func(count int) (values []int, err error) {
		values = make([]int, count)
		for n := range count {
			values[n], err = inst.Number(n)
			if err != nil {
				return
			}
		}
		return
	}

	var values []int

	switch inst.Op {
	case codon.OP_START:
		// Already running.
	case codon.OP_STOP:
		err = &ErrHalt{Reason: HALT_STOP, Ip: orig}
		return
	case codon.OP_MUT:
		values, err = numbers(1)
		if err != nil {
			return
		}
		err = fault(OPERATION_MUTATE, cpu.Strand.Set(orig+values[0], args[1]))
	case codon.OP_DEL:
		values, err = numbers(1)
		if err != nil {
			return
		}
		err = fault(OPERATION_DELETE, cpu.Strand.Delete(orig+values[0], 1))
	case codon.OP_INS:
		values, err = numbers(1)
		if err != nil {
			return
		}
		err = fault(OPERATION_INSERT, cpu.Strand.Insert(orig+values[0], args[1]))
	case codon.OP_DUP:
		values, err = numbers(2)
		if err != nil {
			return
		}
		err = fault(OPERATION_DUPLICATE, cpu.duplicate(orig+values[0], values[1]))
	case codon.OP_TRP:
		values, err = numbers(3)
		if err != nil {
			return
		}
		err = fault(OPERATION_TRANSPOSE, cpu.transpose(orig+values[0]+1, values[1], orig+values[2]))
	case codon.OP_REV:
		values, err = numbers(2)
		if err != nil {
			return
		}
		err = fault(OPERATION_REVERSE, cpu.Strand.Reverse(orig+values[0], values[1]))
	case codon.OP_LDI:
		// Interpretation depends on the instruction that uses it.
		cpu.Acc.Set(args[0])
	case codon.OP_LD:
		values, err = numbers(1)
		if err != nil {
			return
		}
		var c codon.Codon
		c, err = cpu.Strand.At(orig + values[0])
		if err != nil {
			err = fault(OPERATION_LOAD, err)
			return
		}
		cpu.Acc.Set(c)
	case codon.OP_ST:
		values, err = numbers(1)
		if err != nil {
			return
		}
		var c codon.Codon
		c, err = cpu.Acc.Get()
		if err != nil {
			return
		}
		err = fault(OPERATION_STORE, cpu.Strand.Set(orig+values[0], c))
	case codon.OP_ADDI:
		values, err = numbers(1)
		if err != nil {
			return
		}
		var c codon.Codon
		c, err = cpu.Acc.Get()
		if err != nil {
			return
		}
		var acc int
		acc, err = c.Signed()
		if err != nil {
			return
		}
		c, err = codon.FromNumber(acc+values[0], true)
		if err != nil {
			return
		}
		cpu.Acc.Set(c)
	case codon.OP_CMP:
		var c codon.Codon
		c, err = cpu.Acc.Get()
		if err != nil {
			return
		}
		cpu.Flag = c == args[0]
	case codon.OP_SETF:
		var first byte
		if len(args[0]) > 0 {
			first = args[0][0]
		}
		switch first {
		case 'A', 'C', 'a', 'c':
			cpu.Flag = true
		default:
			cpu.Flag = false
		}
	case codon.OP_OUT:
		var c codon.Codon
		c, err = cpu.Acc.Get()
		if err != nil {
			return
		}
		var value int
		value, err = c.Unsigned()
		if err != nil {
			return
		}
		var char rune
		char, err = codon.CharacterDecode(value)
		if err != nil {
			return
		}
		if cpu.channel == nil {
			err = ErrChannelInvalid
			return
		}
		err = cpu.channel.Send(char)
	case codon.OP_IN:
		if cpu.channel == nil {
			err = ErrChannelInvalid
			return
		}
		var char rune
		char, err = cpu.channel.Receive()
		if err != nil {
			return
		}
		var value int
		value, err = codon.CharacterEncode(char)
		if err != nil {
			return
		}
		var c codon.Codon
		c, err = codon.FromNumber(value, false)
		if err != nil {
			return
		}
		cpu.Acc.Set(c)
	default:
		err = &ErrHalt{Reason: HALT_INVALID, Ip: orig, Codon: inst.Op.Codon()}
		return
	}

	if err != nil {
		return
	}

	cpu.Ip = next_ip

	return
}

// duplicate copies the count codons that follow index, and inserts the
// copy at index+count.
func (cpu *Cpu) duplicate(index, count int) (err error) {
	block, err := cpu.Strand.Slice(index+1, count)
	if err != nil {
		return
	}

	err = cpu.Strand.Insert(index+count, block...)

	return
}

// transpose moves the count codons at src so that they start at dst.
// The block is inserted at dst before the original is removed, so dst
// is an index into the strand as it was before the move.
func (cpu *Cpu) transpose(src, count, dst int) (err error) {
	block, err := cpu.Strand.Slice(src, count)
	if err != nil || count == 0 {
		return
	}

	err = cpu.Strand.Insert(dst, block...)
	if err != nil {
		return
	}

	switch {
	case dst <= src:
		// Original block was shifted up by the insert.
		err = cpu.Strand.Delete(src+count, count)
	case dst >= src+count:
		err = cpu.Strand.Delete(src, count)
	default:
		// Moved into itself: the original is split around the copy.
		err = cpu.Strand.Delete(dst+count, src+count-dst)
		if err != nil {
			return
		}
		err = cpu.Strand.Delete(src, dst-src)
	}

	return
}
