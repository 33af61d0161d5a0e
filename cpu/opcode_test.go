package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uvsim/memory"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		instruction memory.Word
		op          Opcode
		operand     int
	}){
		{1007, OP_READ, 7},
		{1199, OP_WRITE, 99},
		{2000, OP_LOAD, 0},
		{-2150, OP_STORE, 50},
		{4300, OP_HALT, 0},
		{0, Opcode(0), 0},
		{99, Opcode(0), 99},
		{9999, Opcode(99), 99},
		{123456, Opcode(1234), 56},
		{-9901, Opcode(99), 1},
	}

	for _, entry := range table {
		op, operand := Decode(entry.instruction)
		assert.Equal(entry.op, op, entry.instruction.String())
		assert.Equal(entry.operand, operand, entry.instruction.String())
	}
}

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(12, len(Opcodes))

	for _, op := range Opcodes {
		assert.True(op.Valid(), op.String())
		for operand := range OPERAND_LIMIT {
			dop, doperand := Decode(Encode(op, operand))
			assert.Equal(op, dop)
			assert.Equal(operand, doperand)
		}
	}

	assert.False(Opcode(0).Valid())
	assert.False(Opcode(12).Valid())
	assert.False(Opcode(99).Valid())

	assert.Equal("READ", OP_READ.String())
	assert.Equal("BRANCHZERO", OP_BRANCHZERO.String())
	assert.Equal("Opcode(99)", Opcode(99).String())

	assert.True(OP_BRANCH.Branches())
	assert.True(OP_BRANCHNEG.Branches())
	assert.True(OP_BRANCHZERO.Branches())
	assert.False(OP_HALT.Branches())
	assert.True(OP_DIVIDE.Arithmetic())
	assert.False(OP_STORE.Arithmetic())

	assert.Equal("faulted", STATE_FAULTED.String())
	assert.Equal("State(9)", State(9).String())
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("READ 07", Disassemble(1007))
	assert.Equal("HALT 00", Disassemble(4300))
	assert.Equal(".word +9901", Disassemble(9901))
	assert.Equal(".word +0000", Disassemble(0))
}
