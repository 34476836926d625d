// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/helix/codon"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":       "0",
	"UNSIGNED_MAX": fmt.Sprintf("%d", codon.UNSIGNED_MAX),
	"SIGNED_MIN":   fmt.Sprintf("%d", codon.SIGNED_MIN),
	"SIGNED_MAX":   fmt.Sprintf("%d", codon.SIGNED_MAX),
}

// mnemonicMap maps lower case mnemonics to opcodes.
var mnemonicMap = map[string]codon.Opcode{}

// linkBias corrects label offsets for operands that address the codon
// after orig+value, so that '>label' always addresses the label.
var linkBias = map[codon.Opcode]map[int]int{
	codon.OP_DUP: {0: -1},
	codon.OP_TRP: {0: -1},
}

func init() {
	for op := range codon.Opcodes() {
		mnemonicMap[strings.ToLower(op.String())] = op
	}
}

// Assembler is a single pass macro assembler for Helix strands.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to strand indexes.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	expansion int // Count of macro expansions.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)

	return
}

// operandOf encodes a single operand word.
//
// Label references are returned as a link, with a placeholder codon.
func (asm *Assembler) operandOf(word string, kind codon.Operand) (c codon.Codon, link *Link, err error) {
	if strings.HasPrefix(word, ">") {
		label := word[1:]
		adjust := 0
		if n := strings.IndexAny(label, "+-"); n > 0 {
			adjust, err = asm.valueOf(label[n:])
			if err != nil {
				return
			}
			label = label[:n]
		}
		if len(label) == 0 {
			err = ErrTargetInvalid
			return
		}
		c = "AAA"
		link = &Link{Label: label, Adjust: adjust, Signed: kind.Signed()}
		return
	}

	if codon.IsValid(word) {
		c = codon.Codon(strings.ToUpper(word))
		return
	}

	value, err := asm.valueOf(word)
	if err != nil {
		return
	}

	c, err = codon.FromNumber(value, kind.Signed() || value < 0)

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var num int
		num, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be codons
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(num)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

var (
	charRegexp  = regexp.MustCompile(`'\\?[^']'`)
	parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)
)

// charEval replaces 'x' character literals with their alphabet index.
// Literals outside of the alphabet are left alone.
func charEval(line string) string {
	return charRegexp.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "n":
				str = "\n"
			case "s":
				str = " "
			default:
				return word
			}
		}
		value, err := codon.CharacterEncode([]rune(str)[0])
		if err != nil {
			return word
		}
		return fmt.Sprintf("%d", value)
	})
}

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = charEval(line)

	// Do $() evaluations
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentIp()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		// Local labels are unique to each expansion.
		asm.expansion++
		local := fmt.Sprintf("%v_%v_", name, asm.expansion)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentIp gets the strand index of the next codon.
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codons)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.expansion = 0
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = charEval(val)
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		for _, link := range op.Links {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")

			target, ok := asm.Label[link.Label]
			if !ok {
				err = ErrLabelMissing(link.Label)
				return
			}
			value := target - op.Ip + link.Adjust
			op.Codons[link.Index], err = codon.FromNumber(value, link.Signed || value < 0)
			if err != nil {
				return
			}
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// instructionOf finds the opcode for a mnemonic, or an opcode codon.
func instructionOf(word string) (op codon.Opcode, ok bool) {
	op, ok = mnemonicMap[strings.ToLower(word)]
	if ok {
		return
	}

	if codon.IsValid(word) {
		op, ok = codon.Decode(codon.Codon(word))
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codons codon.Strand
	var links []Link

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if err != nil || len(codons) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Ip: asm.currentIp(), Words: initial_words, Codons: codons, Links: links}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	// .dna CODON...
	if words[0] == ".dna" {
		for _, word := range words[1:] {
			strand, perr := codon.Parse(word)
			if perr == nil && len(strand) > 0 && !slices.ContainsFunc(strand, func(c codon.Codon) bool { return !c.Valid() }) {
				codons = append(codons, strand...)
				continue
			}
			var c codon.Codon
			var link *Link
			c, link, err = asm.operandOf(word, codon.OPERAND_CODON)
			if err != nil {
				return
			}
			if link != nil {
				err = ErrTargetInvalid
				return
			}
			codons = append(codons, c)
		}
		return
	}

	op, ok := instructionOf(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	kinds := op.Operands()
	args := words[1:]
	if len(args) < len(kinds) {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > len(kinds) {
		err = ErrOpcodeExtraArgs
		return
	}

	codons = append(codons, op.Codon())
	for n, kind := range kinds {
		var c codon.Codon
		var link *Link
		c, link, err = asm.operandOf(args[n], kind)
		if err != nil {
			return
		}
		if link != nil {
			link.Index = len(codons)
			link.Adjust += linkBias[op][n]
			links = append(links, *link)
		}
		codons = append(codons, c)
	}

	return
}
