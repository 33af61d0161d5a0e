package cpu

import (
	"github.com/ezrec/uvsim/memory"
)

// Alu is the arithmetic unit. Every result is truncated to four decimal
// digits, keeping the sign of the untruncated result.
type Alu struct{}

// operand fetches a memory operand. Both it and the accumulator must be
// valid words.
func (alu Alu) operand(accumulator memory.Word, bank *memory.Bank, addr int) (value memory.Word, err error) {
	value, err = bank.Read(addr)
	if err != nil {
		return
	}

	if !value.Valid() || !accumulator.Valid() {
		err = ErrInvalidOperand
		return
	}

	return
}

// Add returns accumulator + Memory[addr].
func (alu Alu) Add(accumulator memory.Word, bank *memory.Bank, addr int) (result memory.Word, err error) {
	value, err := alu.operand(accumulator, bank, addr)
	if err != nil {
		return
	}

	result = (accumulator + value).Truncate()
	return
}

// Subtract returns accumulator - Memory[addr].
func (alu Alu) Subtract(accumulator memory.Word, bank *memory.Bank, addr int) (result memory.Word, err error) {
	value, err := alu.operand(accumulator, bank, addr)
	if err != nil {
		return
	}

	result = (accumulator - value).Truncate()
	return
}

// Multiply returns accumulator * Memory[addr].
func (alu Alu) Multiply(accumulator memory.Word, bank *memory.Bank, addr int) (result memory.Word, err error) {
	value, err := alu.operand(accumulator, bank, addr)
	if err != nil {
		return
	}

	result = (accumulator * value).Truncate()
	return
}

// Divide returns accumulator / Memory[addr], rounded toward negative
// infinity: -7 / 2 is -4.
func (alu Alu) Divide(accumulator memory.Word, bank *memory.Bank, addr int) (result memory.Word, err error) {
	value, err := alu.operand(accumulator, bank, addr)
	if err != nil {
		return
	}

	if value == 0 {
		err = ErrDivideByZero
		return
	}

	quotient := accumulator / value
	if accumulator%value != 0 && (accumulator < 0) != (value < 0) {
		quotient--
	}

	result = quotient.Truncate()
	return
}

// Do performs the arithmetic opcode, and returns the new accumulator.
func (alu Alu) Do(op Opcode, accumulator memory.Word, bank *memory.Bank, addr int) (result memory.Word, err error) {
	switch op {
	case OP_ADD:
		result, err = alu.Add(accumulator, bank, addr)
	case OP_SUBTRACT:
		result, err = alu.Subtract(accumulator, bank, addr)
	case OP_DIVIDE:
		result, err = alu.Divide(accumulator, bank, addr)
	case OP_MULTIPLY:
		result, err = alu.Multiply(accumulator, bank, addr)
	default:
		result = accumulator
		err = ErrOpcodeUnknown
	}

	return
}
