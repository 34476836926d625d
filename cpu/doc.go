// Package cpu implements the execution engine and assembler for the Helix system.
//
// The engine owns a strand of codons, an accumulator register that holds
// a single raw codon, a one bit flag, and an instruction pointer (IP).
// Execution starts after the first START codon. Each instruction's
// operands follow it in the strand, and every offset is relative to the
// index of the opcode itself. Programs may rewrite the strand as they run;
// later fetches observe the rewritten strand.
//
// The assembler provides a mnemonic language for Helix programs,
// supporting macros, labels, equates, and compile-time expression
// evaluation.
package cpu
