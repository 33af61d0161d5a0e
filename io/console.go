package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/uvsim/memory"
)

// Console is a line oriented operator. READ prompts on Output and reads
// a decimal line from Input, WRITE prints one decimal word per line.
//
// Input is buffered on first use; call Rewind after replacing it.
type Console struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ Input = (*Console)(nil)
var _ Output = (*Console)(nil)

// Rewind drops any buffered input, so the next READ starts on Input.
func (con *Console) Rewind() {
	con.scanner = nil
}

// ReadWord prompts until the operator enters an integer in
// [-9999, 9999].
func (con *Console) ReadWord() (word memory.Word, err error) {
	if con.scanner == nil {
		con.scanner = bufio.NewScanner(con.Input)
	}

	for {
		_, err = fmt.Fprint(con.Output, f("Enter an integer from -9999 to +9999: "))
		if err != nil {
			return
		}

		if !con.scanner.Scan() {
			err = con.scanner.Err()
			if err == nil {
				err = ErrInputClosed
			}
			return
		}

		value, perr := strconv.Atoi(strings.TrimSpace(con.scanner.Text()))
		if perr != nil || !memory.Word(value).Valid() {
			err = con.Notify(f("Invalid input. Try again."))
			if err != nil {
				return
			}
			continue
		}

		word = memory.Word(value)
		return
	}
}

// WriteWord prints the word in decimal on its own line.
func (con *Console) WriteWord(word memory.Word) (err error) {
	_, err = fmt.Fprintln(con.Output, int(word))
	return
}

// Notify prints the message on its own line.
func (con *Console) Notify(message string) (err error) {
	_, err = fmt.Fprintln(con.Output, message)
	return
}
