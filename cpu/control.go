package cpu

import (
	"github.com/ezrec/uvsim/io"
	"github.com/ezrec/uvsim/memory"
)

// Control is the control-flow unit.
//
// Branches return the cursor one short of the target; the execution
// engine advances the cursor after every non-halting instruction, so
// the next fetch lands on the target itself.
type Control struct{}

// Branch returns the cursor for an unconditional branch to addr.
// addr must satisfy -2 < addr < 100.
func (ctl Control) Branch(addr int) (cursor int, err error) {
	if addr <= -2 || addr >= memory.MEMORY_SIZE {
		err = memory.ErrAddress(addr)
		return
	}

	cursor = addr - 1
	return
}

// BranchNegative branches to addr if the accumulator is negative,
// otherwise the cursor is returned unchanged.
func (ctl Control) BranchNegative(cursor int, accumulator memory.Word, addr int) (next int, err error) {
	next = cursor
	if accumulator < 0 {
		next, err = ctl.Branch(addr)
	}
	return
}

// BranchZero branches to addr if the accumulator is zero, otherwise
// the cursor is returned unchanged.
func (ctl Control) BranchZero(cursor int, accumulator memory.Word, addr int) (next int, err error) {
	next = cursor
	if accumulator == 0 {
		next, err = ctl.Branch(addr)
	}
	return
}

// Do performs the branch opcode, and returns the cursor for the engine
// to advance from.
func (ctl Control) Do(op Opcode, cursor int, accumulator memory.Word, addr int) (next int, err error) {
	switch op {
	case OP_BRANCH:
		next, err = ctl.Branch(addr)
	case OP_BRANCHNEG:
		next, err = ctl.BranchNegative(cursor, accumulator, addr)
	case OP_BRANCHZERO:
		next, err = ctl.BranchZero(cursor, accumulator, addr)
	default:
		next = cursor
		err = ErrOpcodeUnknown
	}

	return
}

// Halt returns the final cursor, and notifies the halter. Without a
// halter, a completion message is sent to the output instead.
func (ctl Control) Halt(halter io.Halter, output io.Output, addr int) (cursor int, err error) {
	cursor = addr

	if halter != nil {
		halter.Halted()
		return
	}

	if output != nil {
		err = output.Notify(f("Program completed."))
	}

	return
}
