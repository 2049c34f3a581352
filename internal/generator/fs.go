package generator

import (
	"os"

	"github.com/spf13/afero"
)

// FileSystem is the set of filesystem primitives the generator needs.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// DirExists reports whether path exists and is a directory.
	DirExists(path string) (bool, error)

	// MkdirAll creates path and its parents. Existing directories are fine.
	MkdirAll(path string) error

	// WriteFile creates or truncates path with data.
	WriteFile(path string, data []byte) error
}

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

type aferoFS struct {
	fs afero.Fs
}

// NewFileSystem adapts an afero filesystem.
func NewFileSystem(fs afero.Fs) FileSystem {
	return &aferoFS{fs: fs}
}

// NewOSFileSystem returns a FileSystem backed by the operating system.
func NewOSFileSystem() FileSystem {
	return NewFileSystem(afero.NewOsFs())
}

func (a *aferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

func (a *aferoFS) DirExists(path string) (bool, error) {
	return afero.DirExists(a.fs, path)
}

func (a *aferoFS) MkdirAll(path string) error {
	return a.fs.MkdirAll(path, dirPerm)
}

func (a *aferoFS) WriteFile(path string, data []byte) error {
	return afero.WriteFile(a.fs, path, data, filePerm)
}
