// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/hmasm/emulator"
	"github.com/ezrec/hmasm/trace"
)

func main() {
	var compile bool
	var steps int
	var format string
	var output string
	var verbose bool

	flag.BoolVar(&compile, "c", false, "Print the program image, do not simulate")
	flag.IntVar(&steps, "s", emulator.DEFAULT_STEPS, "Steps to simulate")
	flag.StringVar(&format, "f", "text", "Output format (text, markdown, html, csv, yaml)")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		atexit.Fatalf("%v: expected one .asm file, got: %v", os.Args[0], flag.Args())
	}

	source := flag.Arg(0)

	outFormat, err := trace.ParseFormat(format)
	if err != nil {
		atexit.Fatalf("%v: %v", format, err)
	}

	var inf io.Reader = os.Stdin
	if source != "-" {
		file, err := os.Open(source)
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
		atexit.Register(func() { file.Close() })
		inf = file
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { file.Close() })
		ouf = file
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxSteps = max(steps, 0)

	err = emu.Load(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	if compile {
		err = trace.WriteProgram(ouf, emu.Program, outFormat)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Exit(0)
	}

	states, err := emu.Run()
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	err = trace.Write(ouf, states, outFormat)
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	atexit.Exit(0)
}
