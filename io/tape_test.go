package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("hello\n\nZ\r\nlast")}

	table := []rune{'h', '\n', 'Z', 'l'}
	for _, expected := range table {
		value, err := tape.Receive()
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	_, err := tape.Receive()
	assert.ErrorIs(err, ErrChannelEmpty)
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}

	_, err := tape.Receive()
	assert.ErrorIs(err, ErrChannelEmpty)
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("a\n")}

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal('a', value)

	tape.Input = strings.NewReader("b\n")
	tape.Rewind()

	value, err = tape.Receive()
	assert.NoError(err)
	assert.Equal('b', value)
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	for _, r := range "Hi 2\n" {
		assert.NoError(tape.Send(r))
	}
	assert.Equal("Hi 2\n", output.String())

	tape.Output = nil
	assert.ErrorIs(tape.Send('x'), ErrChannelFull)
}
