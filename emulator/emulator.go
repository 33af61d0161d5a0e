// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"

	"github.com/ezrec/uvsim/cpu"
	"github.com/ezrec/uvsim/internal"
	uvio "github.com/ezrec/uvsim/io"
	"github.com/ezrec/uvsim/memory"
)

var _emulator_defines = map[string]string{
	"OPERAND_LIMIT": fmt.Sprintf("%d", cpu.OPERAND_LIMIT),
	"WORD_MODULUS":  fmt.Sprintf("%d", memory.WORD_MODULUS),
}

// Emulator state. CPU + program listing + operator console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Console uvio.Console // Operator console for READ, WRITE and messages.
}

// NewEmulator creates a new emulator, with the console attached to the
// CPU. HALT is reported on the console.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Input = &emu.Console
	emu.Cpu.Output = &emu.Console

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Close the emulator
func (emu *Emulator) Close() (err error) {
	emu.Console.Rewind()

	return
}

// Assemble BasicML mnemonic source into the program, with all of the
// emulator defines predefined, and reset.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	return emu.use(prog)
}

// Load a numeric program image, and reset.
func (emu *Emulator) Load(image []memory.Word) (err error) {
	return emu.use(cpu.ProgramOf(image))
}

// use switches to a new program, keeping the old one if it does not fit.
func (emu *Emulator) use(prog *cpu.Program) (err error) {
	prior := emu.Program
	emu.Program = prog

	err = emu.Reset()
	if err != nil {
		emu.Program = prior
		return
	}

	return
}

// Reset the emulator state. The program is reloaded into memory from
// address 0, cells past its end keep their values, and the CPU registers
// are cleared.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Load(emu.Program.Image())
	return
}

// Clear zeros all of memory, then resets.
func (emu *Emulator) Clear() (err error) {
	emu.Cpu.Memory.Reset()

	err = emu.Reset()
	return
}

// LineNo returns the current line number for the word under the cursor.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Memory.Cursor)
}

// Listing returns the memory listing, one 'NN: +XXXX' line per cell.
func (emu *Emulator) Listing() string {
	return emu.Cpu.Memory.Listing()
}

// Status returns the accumulator and cursor for display.
func (emu *Emulator) Status() string {
	return f("Accumulator: %v\nCursor: %v\n",
		strconv.Itoa(int(emu.Cpu.Memory.Accumulator)),
		strconv.Itoa(emu.Cpu.Memory.Cursor))
}

// Tick performs a single tick of the emulator.
// done is set once the program has halted or terminated.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.State != cpu.STATE_RUNNING {
		done = true
		return
	}

	addr := emu.Cpu.Memory.Cursor
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: addr, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.State != cpu.STATE_RUNNING
	return
}

// Run ticks the emulator until the program is done.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
