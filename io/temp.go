package io

// Temporary is an in-memory channel. Input is consumed one character per
// Receive, and every sent character is appended to Output.
type Temporary struct {
	Input  []rune
	Output []rune

	readIndex int
}

// Rewind restarts the input and discards the output.
func (tc *Temporary) Rewind() {
	tc.readIndex = 0
	tc.Output = tc.Output[:0]
}

// Receive the next input character.
func (tc *Temporary) Receive() (value rune, err error) {
	if tc.readIndex >= len(tc.Input) {
		err = ErrChannelEmpty
		return
	}

	value = tc.Input[tc.readIndex]
	tc.readIndex++

	return
}

// Send appends a character to the output.
func (tc *Temporary) Send(value rune) (err error) {
	tc.Output = append(tc.Output, value)
	return
}

// String returns the output sent so far.
func (tc *Temporary) String() string {
	return string(tc.Output)
}
