package emulator

import (
	"strconv"

	"github.com/ezrec/uvsim/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo  int // Source line of the faulting word, or 0 if unknown.
	Address int // Memory address of the faulting word.
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("address %02d: %v", err.Address, err.Err)
	}
	return f("line %v (address %02d): %v", strconv.Itoa(err.LineNo), err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
