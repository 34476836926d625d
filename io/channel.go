// Package io provides character I/O channels for the Helix emulator.
// It includes a line oriented Tape over an io.Reader and io.Writer, and
// an in-memory Temporary channel.
package io

// Channel defines the interface for the IN and OUT instructions.
// Channels move one character of the codon alphabet at a time.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive blocks until a character is available.
	Receive() (rune, error)
	// Send writes a single character to the channel.
	Send(value rune) error
}
