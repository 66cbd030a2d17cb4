package fsscan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
)

// ErrNotDirectory is returned when the source path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Option customizes a Lister.
type Option func(*Lister)

// WithNFC recomposes decomposed (NFD) names into NFC before returning them.
// Some filesystems store names decomposed, which would otherwise make two
// visually identical folder names compare unequal.
func WithNFC(enabled bool) Option {
	return func(l *Lister) {
		l.nfc = enabled
	}
}

// Lister enumerates subdirectories on an afero filesystem.
type Lister struct {
	fs  afero.Fs
	nfc bool
}

// New returns a Lister over fs.
func New(fs afero.Fs, opts ...Option) *Lister {
	l := &Lister{fs: fs}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewOS returns a Lister over the host filesystem.
func NewOS(opts ...Option) *Lister {
	return New(afero.NewOsFs(), opts...)
}

// ListDirs returns the names of the immediate subdirectories of path, sorted
// by name. Regular files are ignored; symlinks count when they resolve to a
// directory.
func (l *Lister) ListDirs(path string) ([]string, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("stat source: %w", ErrNotDirectory)
	}

	children, err := afero.ReadDir(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	names := make([]string, 0, len(children))
	for _, child := range children {
		if !l.isDir(path, child) {
			continue
		}
		name := child.Name()
		if l.nfc {
			name = norm.NFC.String(name)
		}
		names = append(names, name)
	}
	return names, nil
}

func (l *Lister) isDir(parent string, child os.FileInfo) bool {
	if child.IsDir() {
		return true
	}
	if child.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := l.fs.Stat(filepath.Join(parent, child.Name()))
	if err != nil {
		return false
	}
	return target.IsDir()
}
