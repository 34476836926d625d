package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/helix/codon"
	"github.com/ezrec/helix/io"
)

// fuzzBases includes one invalid base so invalid codons are generated.
const fuzzBases = "ACGTX"

func FuzzCpu(f *testing.F) {
	f.Add([]byte{}, "")
	f.Add([]byte{0, 3, 2, 1, 3, 0}, "z")
	f.Add([]byte{0, 3, 2, 1, 0, 2, 0, 0, 3, 3, 3, 3}, "hello")
	f.Add([]byte{0, 3, 2, 1, 1, 2, 3, 3, 3, 0, 0, 1, 3, 3, 3}, "")

	f.Fuzz(func(t *testing.T, data []byte, input string) {
		assert := assert.New(t)

		codons := make(codon.Strand, 0, len(data)/3)
		for n := 0; n+3 <= len(data); n += 3 {
			var c [3]byte
			for i := range c {
				c[i] = fuzzBases[int(data[n+i])%len(fuzzBases)]
			}
			codons = append(codons, codon.Codon(c[:]))
		}

		cpu := NewCpu()
		cpu.SetChannel(&io.Temporary{Input: []rune(input)})
		cpu.Load(codons)

		err := cpu.Reset()
		if err != nil {
			assert.ErrorIs(err, ErrNoEntryPoint)
			return
		}

		for range 1000 {
			before := cpu.Strand.Clone()
			ip := cpu.Ip

			err = cpu.Tick()
			if err == nil {
				continue
			}

			switch {
			case errors.Is(err, ErrHalted):
				assert.NotEqual(HALT_NONE, cpu.Halt, err.Error())
				assert.Equal(ip, cpu.Ip, err.Error())
			case errors.Is(err, ErrIndexFault):
				assert.Equal(before, cpu.Strand, err.Error())
				assert.Equal(ip, cpu.Ip, err.Error())
			}
			return
		}
	})
}
