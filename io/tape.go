package io

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// Tape provides line oriented input and character output over byte streams.
//
// Each Receive consumes one line of Input and yields its first character;
// an empty line yields a newline. Input is buffered on first use, so a
// replaced Input is only picked up after Rewind.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

// Rewind drops any buffered input. The underlying streams are not seekable.
func (tc *Tape) Rewind() {
	tc.reader = nil
}

// Receive reads the next line of input and returns its first character.
func (tc *Tape) Receive() (value rune, err error) {
	if tc.Input == nil {
		err = ErrChannelEmpty
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	line, err := tc.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if len(line) == 0 {
			err = ErrChannelEmpty
			return
		}
		err = nil
	}
	if err != nil {
		return
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if len(line) == 0 {
		value = '\n'
		return
	}

	value, _ = utf8.DecodeRuneInString(line)

	return
}

// Send writes a character to the output stream.
func (tc *Tape) Send(value rune) (err error) {
	if tc.Output == nil {
		err = ErrChannelFull
		return
	}

	_, err = io.WriteString(tc.Output, string(value))

	return
}
