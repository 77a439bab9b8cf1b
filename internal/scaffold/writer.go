package scaffold

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Writer is the filesystem side of generation.
type Writer interface {
	EnsureDir(path string) error
	Exists(path string) (bool, error)
	WriteFile(path, content string) error
}

// IOError wraps a filesystem failure during generation. Generation is never
// retried after an IOError.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FSWriter implements Writer on an afero filesystem.
type FSWriter struct {
	fs afero.Fs
}

// NewFSWriter returns a Writer backed by fs.
func NewFSWriter(fs afero.Fs) *FSWriter {
	return &FSWriter{fs: fs}
}

// NewOSWriter returns a Writer backed by the real filesystem.
func NewOSWriter() *FSWriter {
	return NewFSWriter(afero.NewOsFs())
}

// EnsureDir creates path and any missing parents.
func (w *FSWriter) EnsureDir(path string) error {
	if err := w.fs.MkdirAll(path, dirPerm); err != nil {
		return &IOError{Op: "creating directory", Path: path, Err: err}
	}
	return nil
}

// Exists reports whether path is present.
func (w *FSWriter) Exists(path string) (bool, error) {
	ok, err := afero.Exists(w.fs, path)
	if err != nil {
		return false, &IOError{Op: "checking", Path: path, Err: err}
	}
	return ok, nil
}

// WriteFile writes content to path, replacing any existing file.
func (w *FSWriter) WriteFile(path, content string) error {
	if err := afero.WriteFile(w.fs, path, []byte(content), filePerm); err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	return nil
}

// errExists is wrapped in the IOError returned for an existing target.
var errExists = fmt.Errorf("file already exists (use --force to overwrite): %w", fs.ErrExist)
