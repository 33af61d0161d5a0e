package io

import (
	"errors"

	"github.com/ezrec/uvsim/translate"
)

var f = translate.From

var (
	// Collaborator errors
	ErrInputClosed = errors.New(f("input closed"))
)
