package loader

import (
	"io"
	"os"
	"path/filepath"
)

// CreateFS is a file system that can create files for writing.
type CreateFS interface {
	// Create creates or truncates a file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS is a CreateFS rooted at a host directory.
type DirFS string

var _ CreateFS = DirFS("")

// Create creates the named file below the directory.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	file, err = os.Create(filepath.Join(string(dir), filepath.FromSlash(name)))
	return
}
