// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/helix/cpu"
	"github.com/ezrec/helix/emulator"
)

// run loads and executes the source, returning the process exit status.
func run(conf *Config, source string, stdin io.Reader, stdout io.Writer) (status int, err error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = conf.Verbose

	if conf.Assemble {
		asm := &cpu.Assembler{Verbose: conf.Verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		for key, value := range conf.Predefine {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(bytes.NewReader(data))
	} else {
		err = emu.SetStrand(strings.TrimSpace(string(data)))
	}
	if err != nil {
		return
	}

	if conf.Show {
		_, err = fmt.Fprintln(stdout, emu.Program.Strand())
		return
	}

	if conf.Input == "-" {
		emu.Tape.Input = stdin
	} else {
		inf, err := os.Open(conf.Input)
		if err != nil {
			return 0, err
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if conf.Output == "-" {
		emu.Tape.Output = stdout
	} else {
		ouf, err := os.Create(conf.Output)
		if err != nil {
			return 0, err
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	halt, err := emu.Run()
	switch halt {
	case cpu.HALT_STOP:
		status = 1
	case cpu.HALT_INVALID:
		// Not a fault; the strand simply ends in junk.
		log.Printf("%v: %v", source, err)
		err = nil
	}

	return
}

func main() {
	var config string

	conf := DefaultConfig()

	flag.StringVar(&config, "config", "", "TOML configuration file")
	flag.BoolVar(&conf.Assemble, "a", false, "Source is assembly, not nucleotide text")
	flag.BoolVar(&conf.Show, "s", false, "Print the strand, do not execute")
	flag.StringVar(&conf.Input, "i", "-", "Tape input")
	flag.StringVar(&conf.Output, "o", "-", "Tape output")
	flag.BoolVar(&conf.Verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [flags] <source>", os.Args[0], os.Args[0])
	}

	if len(config) != 0 {
		loaded, err := LoadConfig(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
		// Flags override the configuration file.
		flag.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "a":
				loaded.Assemble = conf.Assemble
			case "i":
				loaded.Input = conf.Input
			case "o":
				loaded.Output = conf.Output
			case "v":
				loaded.Verbose = conf.Verbose
			}
		})
		loaded.Show = conf.Show
		conf = loaded
	}

	source := flag.Arg(0)

	status, err := run(conf, source, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	os.Exit(status)
}
