// Package loader converts BasicML program sources into memory images,
// and writes memory images back out in the same flat text format: one
// signed decimal word per line.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ezrec/uvsim/memory"
)

// parseWord parses a single decimal token, with optional sign.
func parseWord(token string) (word memory.Word, err error) {
	value, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		err = ErrFormat
		return
	}

	word = memory.Word(value)
	return
}

// Parse reads one word per line from a program source.
// The word range and program length are not checked here; the memory
// bank rejects images that do not fit.
func Parse(input io.Reader) (image []memory.Word, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno++

		var word memory.Word
		word, err = parseWord(line)
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: line, Err: err}
			image = nil
			return
		}
		image = append(image, word)
	}

	err = scanner.Err()
	if err != nil {
		image = nil
	}

	return
}

// ParseTokens converts an explicit list of integer tokens, in order.
func ParseTokens(tokens []string) (image []memory.Word, err error) {
	image = make([]memory.Word, 0, len(tokens))
	for n, token := range tokens {
		var word memory.Word
		word, err = parseWord(token)
		if err != nil {
			err = &ErrLine{LineNo: n + 1, Line: token, Err: err}
			image = nil
			return
		}
		image = append(image, word)
	}

	return
}

// Unmarshal parses the named program source from a file system.
func Unmarshal(filesys fs.FS, name string) (image []memory.Word, err error) {
	inf, err := filesys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errors.Join(ErrFileNotFound, err)
		}
		return
	}
	defer inf.Close()

	image, err = Parse(inf)
	return
}

// LoadFile parses a program source from a path on the host.
func LoadFile(path string) (image []memory.Word, err error) {
	inf, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errors.Join(ErrFileNotFound, err)
		}
		return
	}
	defer inf.Close()

	image, err = Parse(inf)
	return
}

// Save writes the image one fixed width word per line, ie '+1007'.
func Save(output io.Writer, image []memory.Word) (err error) {
	writer := bufio.NewWriter(output)
	for _, word := range image {
		_, err = fmt.Fprintln(writer, word.String())
		if err != nil {
			return
		}
	}

	err = writer.Flush()
	return
}

// Marshal saves the image as the named file in a file system.
func Marshal(filesys CreateFS, name string, image []memory.Word) (err error) {
	ouf, err := filesys.Create(name)
	if err != nil {
		return
	}

	err = Save(ouf, image)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}

// SaveFile saves the image to a path on the host.
func SaveFile(path string, image []memory.Word) (err error) {
	err = Marshal(DirFS(filepath.Dir(path)), filepath.Base(path), image)
	return
}
