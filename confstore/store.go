package confstore

import (
	_ "embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/ardnew/lightfetch/pkg"
)

//go:embed default.ini
var defaultConfig string

// Default returns the embedded default configuration text.
func Default() string { return defaultConfig }

// Store loads and creates configuration files on a filesystem.
type Store struct {
	fs   afero.Fs
	opts []Option
}

// NewStore returns a Store backed by fs. The options are passed to [Parse]
// on every [Store.Load].
func NewStore(fs afero.Fs, opts ...Option) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Store{fs: fs, opts: opts}
}

// Fs returns the filesystem backing s.
func (s *Store) Fs() afero.Fs { return s.fs }

// Load reads and parses the configuration file at path. A missing file is
// first created with the default configuration.
func (s *Store) Load(path string) (*Document, error) {
	_, err := s.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = s.Create(path, false)
		if err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, ErrReadConfig.Detail(path).Wrap(err).
			With(slog.String("path", path))
	}

	doc, err := Parse(string(data), s.opts...)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, e.In(path)
		}

		return nil, err
	}

	return doc, nil
}

// Create writes the default configuration to path. An existing file is
// replaced only if force is set.
func (s *Store) Create(path string, force bool) error {
	if !force {
		ok, err := afero.Exists(s.fs, path)
		if err != nil {
			return ErrReadConfig.Detail(path).Wrap(err).
				With(slog.String("path", path))
		}

		if ok {
			return ErrFileExists.With(slog.String("path", path))
		}
	}

	err := pkg.WriteFile(s.fs, path, []byte(defaultConfig))
	if err != nil {
		return ErrWriteConfig.Detail(path).Wrap(err).
			With(slog.String("path", path))
	}

	return nil
}
