package memory

import (
	"errors"
	"strconv"

	"github.com/ezrec/uvsim/translate"
)

var f = translate.From

var (
	ErrOutOfRange = errors.New(f("address out of range"))
)

// ErrAddress is the memory address that failed a bounds check.
type ErrAddress int

func (err ErrAddress) Error() string {
	return f("address %v out of range", strconv.Itoa(int(err)))
}

func (err ErrAddress) Unwrap() error {
	return ErrOutOfRange
}
