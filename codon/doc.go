// Package codon implements the nucleotide encoding of the Helix system.
//
// A codon is three symbols from the alphabet A, C, G and T, read as a
// most-significant-first base-4 number (A=0, C=1, G=2, T=3). Codons are
// both the instructions and the data of a Helix program: a strand is an
// ordered, resizable sequence of codons that programs may rewrite while
// they run.
//
// The package provides the numeric and character codecs, the opcode
// table, and the Strand type with bounds-checked splice operations.
package codon
