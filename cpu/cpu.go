package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/uvsim/io"
	"github.com/ezrec/uvsim/memory"
)

// State is the execution state of the CPU.
type State int

const (
	STATE_RUNNING    = State(0) // running
	STATE_HALTED     = State(1) // halted
	STATE_TERMINATED = State(2) // terminated
	STATE_FAULTED    = State(3) // faulted
)

var _cpu_defines = func() map[string]string {
	defines := map[string]string{
		"MEMORY_SIZE": fmt.Sprintf("%d", memory.MEMORY_SIZE),
		"WORD_MAX":    fmt.Sprintf("%d", memory.WORD_MAX),
		"WORD_MIN":    fmt.Sprintf("%d", memory.WORD_MIN),
	}
	for _, op := range Opcodes {
		defines["OP_"+op.String()] = fmt.Sprintf("%d", op)
	}
	return defines
}()

// Cpu is the execution engine. It owns its memory bank, and runs the
// fetch-decode-execute loop against its I/O collaborators.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory  *memory.Bank // Memory, accumulator and cursor.
	Alu     Alu          // Arithmetic unit.
	Control Control      // Control-flow unit.

	Input    io.Input    // READ source.
	Output   io.Output   // WRITE sink and operator messages.
	Halter   io.Halter   // Optional HALT notification.
	Observer io.Observer // Optional per-step register observer.

	State  State // Current execution state.
	Reason error // Why execution stopped, if not halted.
	Ticks  int   // Instructions executed since reset.
}

// NewCpu creates a CPU with a zeroed memory bank.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Memory: memory.NewBank(),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	instruction, err := cpu.Memory.Read(cpu.Memory.Cursor)
	var code string
	if err != nil {
		code = "----"
	} else {
		code = Disassemble(instruction)
	}

	text += fmt.Sprintf("% 12s: %v\n", "accumulator", cpu.Memory.Accumulator)
	text += fmt.Sprintf("% 12s: %02d\n", "cursor", cpu.Memory.Cursor)
	text += fmt.Sprintf("% 12s: %v\n", "instruction", code)
	text += fmt.Sprintf("% 12s: %v\n", "state", cpu.State)
	text += fmt.Sprintf("% 12s: %d\n", "ticks", cpu.Ticks)

	return
}

// Reset the CPU state.
// - Zeros the accumulator and the cursor.
// - Returns to the running state.
// - Zeros the tick counter.
// Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		logrus.Debug("cpu: reset")
	}

	cpu.Memory.ResetAccumulator()
	cpu.Memory.ResetCursor()
	cpu.State = STATE_RUNNING
	cpu.Reason = nil
	cpu.Ticks = 0
}

// Load copies a program image into memory, and resets the CPU.
func (cpu *Cpu) Load(image []memory.Word) (err error) {
	err = cpu.Memory.Load(image)
	if err != nil {
		return
	}

	cpu.Reset()
	return
}

// Fetch returns the instruction word under the cursor.
func (cpu *Cpu) Fetch() (instruction memory.Word, err error) {
	instruction, err = cpu.Memory.Read(cpu.Memory.Cursor)
	return
}

// Tick executes a single fetch-decode-execute cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State != STATE_RUNNING {
		err = ErrStopped
		return
	}

	instruction, err := cpu.Fetch()
	if err != nil {
		cpu.State = STATE_FAULTED
		cpu.Reason = err
		return
	}

	err = cpu.Execute(instruction)
	return
}

// Run ticks until the program halts, terminates, or faults.
// An unrecognized opcode terminates the run without error.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single instruction word at the cursor.
func (cpu *Cpu) Execute(instruction memory.Word) (err error) {
	defer func() {
		if err != nil {
			cpu.State = STATE_FAULTED
			cpu.Reason = err
			err = errors.Join(ErrOpcode(instruction), err)
		}
	}()

	bank := cpu.Memory
	op, operand := Decode(instruction)

	if cpu.Verbose {
		logrus.WithFields(logrus.Fields{
			"cursor":      bank.Cursor,
			"accumulator": int(bank.Accumulator),
			"opcode":      op.String(),
			"operand":     operand,
		}).Debug("cpu: execute")
	}

	if cpu.Observer != nil {
		cpu.Observer.Observe(bank.Accumulator, bank.Cursor)
	}

	next := bank.Cursor

	switch {
	case op == OP_READ:
		if cpu.Input == nil {
			err = ErrInputMissing
			return
		}
		var word memory.Word
		word, err = cpu.Input.ReadWord()
		if err != nil {
			return
		}
		err = bank.Write(operand, word)
	case op == OP_WRITE:
		if cpu.Output == nil {
			err = ErrOutputMissing
			return
		}
		var word memory.Word
		word, err = bank.Read(operand)
		if err != nil {
			return
		}
		err = cpu.Output.WriteWord(word)
	case op == OP_LOAD:
		var word memory.Word
		word, err = bank.Read(operand)
		if err != nil {
			return
		}
		// The accumulator only ever holds a valid word.
		if !word.Valid() {
			err = ErrInvalidOperand
			return
		}
		bank.Accumulator = word
	case op == OP_STORE:
		err = bank.Write(operand, bank.Accumulator)
	case op.Arithmetic():
		var result memory.Word
		result, err = cpu.Alu.Do(op, bank.Accumulator, bank, operand)
		if err != nil {
			return
		}
		bank.Accumulator = result
	case op.Branches():
		next, err = cpu.Control.Do(op, next, bank.Accumulator, operand)
	case op == OP_HALT:
		bank.Cursor, err = cpu.Control.Halt(cpu.Halter, cpu.Output, operand)
		cpu.Ticks++
		if err != nil {
			return
		}
		cpu.State = STATE_HALTED
		return
	default:
		// Not a fault. A message that cannot be delivered is only
		// recorded in the reason.
		cpu.State = STATE_TERMINATED
		cpu.Reason = errors.Join(ErrOpcode(instruction), ErrOpcodeUnknown)
		if cpu.Output != nil {
			nerr := cpu.Output.Notify(f("Invalid operation code '%v'. Program terminated.", strconv.Itoa(int(op))))
			if nerr != nil {
				cpu.Reason = errors.Join(cpu.Reason, nerr)
			}
		}
		return
	}

	if err != nil {
		return
	}

	// Never leave the cursor outside of memory.
	next++
	if !bank.Valid(next) {
		err = memory.ErrAddress(next)
		return
	}

	bank.Cursor = next
	cpu.Ticks++

	return
}
