// Package io provides the collaborators that a running UVSim program
// talks to: an operator supplying words for READ, a sink for WRITE and
// status messages, and optional halt and step observers.
package io

import (
	"github.com/ezrec/uvsim/memory"
)

// Input supplies words to the READ instruction.
type Input interface {
	// ReadWord blocks until a valid word is available. Malformed or out
	// of range entries are retried by the implementation; an error is
	// returned only when no further input can be produced.
	ReadWord() (word memory.Word, err error)
}

// Output receives words from the WRITE instruction, and messages about
// the run.
type Output interface {
	// WriteWord emits a single word.
	WriteWord(word memory.Word) error
	// Notify emits an operator message.
	Notify(message string) error
}

// Halter is notified once when a program executes HALT.
type Halter interface {
	Halted()
}

// Observer is shown the machine registers before each instruction.
type Observer interface {
	Observe(accumulator memory.Word, cursor int)
}
