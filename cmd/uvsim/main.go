// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"

	"github.com/ezrec/uvsim/emulator"
	"github.com/ezrec/uvsim/loader"
)

func main() {
	var program string
	var compile string
	var save string
	var input string
	var output string
	var dump bool
	var verbose bool

	flag.StringVar(&program, "p", "", "numeric program file, one word per line")
	flag.StringVar(&compile, "c", "", "BasicML mnemonic file to assemble")
	flag.StringVar(&save, "s", "", "save the memory image to this file, do not execute")
	flag.StringVar(&input, "i", "-", "operator input")
	flag.StringVar(&output, "o", "-", "operator output")
	flag.BoolVar(&dump, "dump", false, "dump the machine state after the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 1 && len(program) == 0 && len(compile) == 0 {
		program = flag.Arg(0)
	} else if flag.NArg() != 0 {
		logrus.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	defer emu.Close()

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			logrus.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		err = emu.Assemble(inf)
		if err != nil {
			logrus.Fatalf("%v: %v", compile, err)
		}
	case len(program) != 0:
		image, err := loader.LoadFile(program)
		if err != nil {
			logrus.Fatalf("%v: %v", program, err)
		}

		err = emu.Load(image)
		if err != nil {
			logrus.Fatalf("%v: %v", program, err)
		}
	default:
		logrus.Fatalf("%v: no program given, use -p or -c", os.Args[0])
	}

	if len(save) != 0 {
		err := loader.SaveFile(save, emu.Program.Image())
		if err != nil {
			logrus.Fatalf("%v: %v", save, err)
		}
		return
	}

	if input == "-" {
		emu.Console.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			logrus.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Console.Input = inf
	}

	if output == "-" {
		emu.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			logrus.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Console.Output = ouf
	}

	err := emu.Run()

	if dump {
		fmt.Fprint(os.Stderr, emu.Status())
		pp.Fprintln(os.Stderr, emu.Cpu.State, emu.Cpu.Memory)
	}

	if err != nil {
		logrus.Fatal(err)
	}

	if emu.Cpu.Reason != nil {
		logrus.WithField("ticks", emu.Cpu.Ticks).Debug(emu.Cpu.Reason)
	}
}
