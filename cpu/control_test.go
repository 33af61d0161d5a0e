package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uvsim/io"
	"github.com/ezrec/uvsim/memory"
)

func TestControlBranch(t *testing.T) {
	assert := assert.New(t)

	ctl := Control{}

	for addr := -1; addr < memory.MEMORY_SIZE; addr++ {
		cursor, err := ctl.Branch(addr)
		assert.NoError(err)
		// The engine advances by one after the branch.
		assert.Equal(addr, cursor+1)
	}

	for _, addr := range []int{-1000, -3, -2, 100, 101, 150, 9999} {
		_, err := ctl.Branch(addr)
		assert.True(errors.Is(err, memory.ErrOutOfRange), addr)
	}
}

func TestControlBranchNegative(t *testing.T) {
	assert := assert.New(t)

	ctl := Control{}

	for n := 1; n < 80; n++ {
		cursor, err := ctl.BranchNegative(n, memory.Word(-n), n+5)
		assert.NoError(err)
		assert.Equal(n+4, cursor)

		cursor, err = ctl.BranchNegative(n, memory.Word(n), n+5)
		assert.NoError(err)
		assert.Equal(n, cursor)
	}

	cursor, err := ctl.BranchNegative(3, 0, 10)
	assert.NoError(err)
	assert.Equal(3, cursor)

	_, err = ctl.BranchNegative(3, -1, 100)
	assert.True(errors.Is(err, memory.ErrOutOfRange))

	// Not taken, so never range checked.
	cursor, err = ctl.BranchNegative(3, 1, 100)
	assert.NoError(err)
	assert.Equal(3, cursor)
}

func TestControlBranchZero(t *testing.T) {
	assert := assert.New(t)

	ctl := Control{}

	for n := 1; n < 80; n++ {
		cursor, err := ctl.BranchZero(n, 0, n+5)
		assert.NoError(err)
		assert.Equal(n+4, cursor)

		cursor, err = ctl.BranchZero(n, memory.Word(n), n+5)
		assert.NoError(err)
		assert.Equal(n, cursor)

		cursor, err = ctl.BranchZero(n, memory.Word(-n), n+5)
		assert.NoError(err)
		assert.Equal(n, cursor)
	}

	_, err := ctl.BranchZero(3, 0, 100)
	assert.True(errors.Is(err, memory.ErrOutOfRange))
}

func TestControlDo(t *testing.T) {
	assert := assert.New(t)

	ctl := Control{}

	table := [](struct {
		op          Opcode
		accumulator memory.Word
		next        int
	}){
		{OP_BRANCH, 5, 19},
		{OP_BRANCHNEG, -5, 19},
		{OP_BRANCHNEG, 5, 3},
		{OP_BRANCHZERO, 0, 19},
		{OP_BRANCHZERO, -1, 3},
	}

	for _, entry := range table {
		next, err := ctl.Do(entry.op, 3, entry.accumulator, 20)
		assert.NoError(err, entry.op.String())
		assert.Equal(entry.next, next, entry.op.String())
	}

	next, err := ctl.Do(OP_HALT, 3, 0, 20)
	assert.True(errors.Is(err, ErrOpcodeUnknown))
	assert.Equal(3, next)
}

func TestControlHalt(t *testing.T) {
	assert := assert.New(t)

	ctl := Control{}

	halter := &io.Recorder{}
	output := &io.Recorder{}
	cursor, err := ctl.Halt(halter, output, 12)
	assert.NoError(err)
	assert.Equal(12, cursor)
	assert.Equal(1, halter.Halts)
	assert.Nil(output.Messages)

	cursor, err = ctl.Halt(nil, output, 0)
	assert.NoError(err)
	assert.Equal(0, cursor)
	assert.Equal([]string{"Program completed."}, output.Messages)

	cursor, err = ctl.Halt(nil, nil, 7)
	assert.NoError(err)
	assert.Equal(7, cursor)
}
