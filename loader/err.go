package loader

import (
	"errors"
	"strconv"

	"github.com/ezrec/uvsim/translate"
)

var f = translate.From

var (
	ErrFileNotFound = errors.New(f("file not found"))
	ErrFormat       = errors.New(f("not an integer"))
)

// ErrLine locates a failure within a program source.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
