package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ardnew/lightfetch/confstore"
	"github.com/ardnew/lightfetch/pkg"
	"github.com/ardnew/lightfetch/sysinfo"
)

// ConfigFile is the base name of the configuration file in [pkg.ConfigDir].
const ConfigFile = "config.ini"

// Collector gathers the system data substituted into fetch text.
type Collector interface {
	Collect(ctx context.Context) (*sysinfo.Info, error)
}

// Env is everything a command reads from or writes to outside its own
// flags. Zero fields are replaced with the host defaults.
type Env struct {
	Fs     afero.Fs
	Stdout io.Writer

	// ConfigPath is the configuration file loaded by every command.
	ConfigPath string
	// CacheDir holds transient files when the configuration does not name
	// a cache path.
	CacheDir string

	Collector Collector
}

// DefaultConfigPath returns the configuration file path used when none is
// given on the command line.
func DefaultConfigPath() string {
	return filepath.Join(pkg.ConfigDir(), ConfigFile)
}

func (e Env) withDefaults() Env {
	if e.Fs == nil {
		e.Fs = afero.NewOsFs()
	}

	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}

	if e.ConfigPath == "" {
		e.ConfigPath = DefaultConfigPath()
	}

	if e.CacheDir == "" {
		e.CacheDir = pkg.CacheDir()
	}

	if e.Collector == nil {
		e.Collector = sysinfo.NewCollector()
	}

	return e
}

func (e Env) store() *confstore.Store { return confstore.NewStore(e.Fs) }

// load reads the configuration, creating the default one if it is missing.
func (e Env) load() (*confstore.Document, error) {
	return e.store().Load(e.ConfigPath)
}

type envKey struct{}

// WithEnv returns a new context.Context carrying env.
func WithEnv(ctx context.Context, env Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// envFrom returns the Env stored in ctx by [WithEnv] with defaults applied.
func envFrom(ctx context.Context) Env {
	env, _ := ctx.Value(envKey{}).(Env)

	return env.withDefaults()
}
