// Package art renders the picture printed beside the fetch text.
//
// ASCII art is read verbatim from a file, or [Default] if no file is set.
// Image art is decoded, resampled and drawn with truecolor half blocks, and
// can be kept in a [Cache] keyed by [Key].
package art

import (
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/ardnew/lightfetch/confstore"
	"github.com/ardnew/lightfetch/log"
	"github.com/ardnew/lightfetch/pkg"
)

// Mode selects how the art path is interpreted.
type Mode uint8

const (
	ModeASCII Mode = iota
	ModeImage
)

func (m Mode) String() string {
	if m == ModeImage {
		return "image"
	}

	return "ascii"
}

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii":
		return ModeASCII, true
	case "image":
		return ModeImage, true
	default:
		return ModeASCII, false
	}
}

// Renderer loads art from a filesystem.
type Renderer struct {
	fs    afero.Fs
	cache *Cache
}

// NewRenderer returns a Renderer reading fs. A nil cache disables caching of
// images.
func NewRenderer(fs afero.Fs, cache *Cache) *Renderer {
	return &Renderer{fs: fs, cache: cache}
}

// ASCII returns the contents of the file at path, or [Default] if path is
// empty. A "~" in path is the home directory.
func (r *Renderer) ASCII(path string) (string, error) {
	if path == "" {
		return Default, nil
	}

	data, err := afero.ReadFile(r.fs, pkg.ExpandHome(path))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Image renders the image file at path with [HalfBlocks]. The rendering is
// served from and saved to the cache when one is set; cache write failures
// are logged and otherwise ignored.
func (r *Renderer) Image(path string, size uint32, filter confstore.Filter) (string, error) {
	path = pkg.ExpandHome(path)

	fi, err := r.fs.Stat(path)
	if err != nil {
		return "", err
	}

	key := Key(fi.Size(), size, filter)

	if r.cache != nil {
		if out, ok := r.cache.Get(key); ok {
			log.Debug("image cache hit", slog.String("key", key))

			return out, nil
		}
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	out, err := HalfBlocks(f, size, filter)
	if err != nil {
		return "", err
	}

	if r.cache != nil {
		err = r.cache.Put(key, out)
		if err != nil {
			log.Warn("image cache write failed",
				slog.String("key", key),
				slog.String("dir", r.cache.Dir()),
				slog.Any("error", err),
			)
		}
	}

	return out, nil
}
