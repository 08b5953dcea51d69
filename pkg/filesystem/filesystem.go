// Package filesystem provides whole-file helpers for Aardvark programs:
// writing a file from a rendered value, binding a path to a File value, and
// reading it back.
package filesystem

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/funvibe/aardvark/internal/config"
	"github.com/funvibe/aardvark/pkg/dynamic"
	"github.com/funvibe/aardvark/pkg/stdio"
)

// MissingPolicy selects what Read yields for a nonexistent path.
type MissingPolicy string

const (
	// MissingError fails with dynamic.ErrIO.
	MissingError MissingPolicy = config.MissingError
	// MissingEmpty yields an empty string.
	MissingEmpty MissingPolicy = config.MissingEmpty
)

// FS runs the helpers against an afero filesystem.
type FS struct {
	fs      afero.Fs
	missing MissingPolicy
	log     logrus.FieldLogger
}

type Option func(*FS)

// WithFs replaces the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(f *FS) { f.fs = fs }
}

func WithMissingPolicy(p MissingPolicy) Option {
	return func(f *FS) { f.missing = p }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(f *FS) { f.log = l }
}

// New returns an FS on the OS filesystem with MissingError.
func New(opts ...Option) *FS {
	f := &FS{
		fs:      afero.NewOsFs(),
		missing: MissingError,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FromConfig returns an FS configured by cfg.
func FromConfig(cfg *config.Config, opts ...Option) *FS {
	return New(append([]Option{WithMissingPolicy(MissingPolicy(cfg.Files.Missing))}, opts...)...)
}

// pathOf accepts a string or a dynamic.Value as a path.
func pathOf(path any) (string, error) {
	switch p := path.(type) {
	case string:
		return p, nil
	case dynamic.Value:
		return p.String(), nil
	case *dynamic.Var:
		return p.String(), nil
	}
	return "", &dynamic.KindError{Kind: dynamic.ErrInvalidConstruction, Err: errors.Errorf("path must be a string or value, got %T", path)}
}

// NewFile creates or truncates path and writes the rendered content.
func (f *FS) NewFile(path, content any) error {
	return f.write(path, content, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// AppendFile appends the rendered content, creating path if needed.
func (f *FS) AppendFile(path, content any) error {
	return f.write(path, content, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

func (f *FS) write(path, content any, flag int) error {
	p, err := pathOf(path)
	if err != nil {
		return err
	}
	text, err := stdio.Render(content)
	if err != nil {
		return err
	}

	fh, err := f.fs.OpenFile(p, flag, 0644)
	if err != nil {
		return dynamic.WrapIO(err, "open %s", p)
	}
	n, err := fh.WriteString(text)
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return dynamic.WrapIO(err, "write %s", p)
	}
	f.log.WithFields(logrus.Fields{"path": p, "bytes": n}).Debug("wrote file")
	return nil
}

// Open binds path to a File value. No I/O happens until Read.
func (f *FS) Open(path any) (dynamic.File, error) {
	p, err := pathOf(path)
	if err != nil {
		return dynamic.File{}, err
	}
	return dynamic.File{Path: p}, nil
}

// Read reads a File-tagged value through this FS, applying the missing-file
// policy.
func (f *FS) Read(v dynamic.Value) (string, error) {
	file, err := dynamic.AsFile(v)
	if err != nil {
		return "", err
	}
	text, err := file.ReadFS(f.fs)
	if err != nil {
		if f.missing == MissingEmpty && errors.Is(err, os.ErrNotExist) {
			f.log.WithField("path", file.Path).Debug("missing file read as empty")
			return "", nil
		}
		return "", err
	}
	f.log.WithFields(logrus.Fields{"path": file.Path, "bytes": len(text)}).Debug("read file")
	return text, nil
}

// Exists reports whether path names an existing file or directory.
func (f *FS) Exists(path any) (bool, error) {
	p, err := pathOf(path)
	if err != nil {
		return false, err
	}
	ok, err := afero.Exists(f.fs, p)
	if err != nil {
		return false, dynamic.WrapIO(err, "stat %s", p)
	}
	return ok, nil
}

// Remove deletes path.
func (f *FS) Remove(path any) error {
	p, err := pathOf(path)
	if err != nil {
		return err
	}
	if err := f.fs.Remove(p); err != nil {
		return dynamic.WrapIO(err, "remove %s", p)
	}
	return nil
}

var defaultFS = New()

// NewFile writes content to path on the OS filesystem.
func NewFile(path, content any) error { return defaultFS.NewFile(path, content) }

// Open binds path to a File value.
func Open(path any) (dynamic.File, error) { return defaultFS.Open(path) }

// Read reads a File value from the OS filesystem.
func Read(v dynamic.Value) (string, error) { return defaultFS.Read(v) }
