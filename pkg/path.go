package pkg

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
	"github.com/spf13/afero"
)

// DirMode is the permission mode for directories created by lightfetch.
const DirMode os.FileMode = 0o700

// FileMode is the permission mode for files created by lightfetch.
const FileMode os.FileMode = 0o644

// Prefix returns the base name used to construct the configuration and cache
// directory paths.
//
// By default, Prefix is the base name of the executable file unless it matches
// one of the following substitution rules:
//   - "__debug_bin" (default output of the dlv debugger): replaced with [Name]
//   - "^\.+" (dot-prefixed names): remove the dot prefix
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		exe, err := os.Executable()
		if err == nil {
			id = exe
		}

		ext := filepath.Ext(filepath.Base(id))
		id = strings.TrimSuffix(filepath.Base(id), ext)

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): Name, // default output from dlv
			regexp.MustCompile(`^\.+`):             "",   // remove leading dot(s)
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		if id == "" {
			return Name
		}

		return id
	},
)

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserConfigDir, ".config"), Prefix())
	},
)

// CacheDir returns the cache directory path used for transient files such as
// rendered images.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserCacheDir, ".cache"), Prefix())
	},
)

// userDir resolves a per-user base directory, falling back to fallback under
// the home directory and finally to the working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err == nil {
		return dir
	}

	dir, err = os.UserHomeDir()
	if err == nil {
		return filepath.Join(dir, fallback)
	}

	dir, err = os.Getwd()
	if err != nil {
		return "."
	}

	return dir
}

// ExpandHome replaces every "~" in path with the current user's home
// directory. The path is returned unchanged if the home directory is unknown.
func ExpandHome(path string) string {
	if !strings.Contains(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return strings.ReplaceAll(path, "~", home)
}

// WriteFile writes data to the named file on fs, creating parent directories
// as needed. Writes to the host filesystem are atomic.
func WriteFile(fs afero.Fs, name string, data []byte) error {
	err := fs.MkdirAll(filepath.Dir(name), DirMode)
	if err != nil {
		return err
	}

	if _, ok := fs.(*afero.OsFs); ok {
		return atomic.WriteFile(name, bytes.NewReader(data))
	}

	return afero.WriteFile(fs, name, data, FileMode)
}
