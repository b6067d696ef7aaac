package art

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/ardnew/lightfetch/confstore"
	"github.com/ardnew/lightfetch/pkg"
)

// Cache stores rendered images as files named by [Key] in a directory.
type Cache struct {
	fs  afero.Fs
	dir string
	// keep is the number of entries retained by Prune. Zero keeps all.
	keep int
}

// NewCache returns a Cache in dir that retains at most keep entries after
// each [Cache.Put]. A keep of zero disables pruning.
func NewCache(fs afero.Fs, dir string, keep int) *Cache {
	return &Cache{fs: fs, dir: dir, keep: keep}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Key identifies a rendering of a source file by its size in bytes, the row
// count and the filter. It does not hash content, so two files of equal
// length collide.
func Key(fileSize int64, size uint32, filter confstore.Filter) string {
	return strconv.FormatInt(fileSize, 10) + strconv.FormatUint(uint64(size), 10) + filter.String()
}

// Get returns the cached rendering stored under key.
func (c *Cache) Get(key string) (string, bool) {
	data, err := afero.ReadFile(c.fs, filepath.Join(c.dir, key))
	if err != nil {
		return "", false
	}

	return string(data), true
}

// Put stores data under key and prunes the cache.
func (c *Cache) Put(key, data string) error {
	err := pkg.WriteFile(c.fs, filepath.Join(c.dir, key), []byte(data))
	if err != nil {
		return err
	}

	if c.keep > 0 {
		_, err = c.Prune(c.keep)
	}

	return err
}

// Prune removes the oldest entries until at most keep remain, returning the
// names of the removed entries.
func (c *Cache) Prune(keep int) ([]string, error) {
	entries, err := afero.ReadDir(c.fs, c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	files := lo.Filter(entries, func(e fs.FileInfo, _ int) bool { return e.Mode().IsRegular() })

	// newest first
	slices.SortStableFunc(files, func(a, b fs.FileInfo) int {
		return b.ModTime().Compare(a.ModTime())
	})

	stale := lo.Map(lo.Drop(files, keep), func(e fs.FileInfo, _ int) string { return e.Name() })

	var errs []error

	for _, name := range stale {
		errs = append(errs, c.fs.Remove(filepath.Join(c.dir, name)))
	}

	return stale, errors.Join(errs...)
}
