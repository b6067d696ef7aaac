package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/ardnew/lightfetch/art"
	"github.com/ardnew/lightfetch/confstore"
	"github.com/ardnew/lightfetch/log"
	"github.com/ardnew/lightfetch/pkg"
	"github.com/ardnew/lightfetch/sysinfo"
	"github.com/ardnew/lightfetch/tmpl"
)

// Configuration section names.
const (
	SectionGeneral = "GENERAL"
	SectionFetch   = "FETCH"
	SectionArt     = "ART"
	SectionImage   = "IMAGE"
	SectionMemory  = "MEMORY"
	SectionUptime  = "UPTIME"
	SectionCache   = "CACHE"
	SectionLog     = "LOG"
)

// settings is the part of a configuration document used by fetch.
type settings struct {
	center   bool
	pipeline tmpl.Pipeline

	text    string
	gap     string
	reverse bool

	mode   art.Mode
	path   string
	size   uint32
	filter confstore.Filter

	format sysinfo.Format

	cache struct {
		enable bool
		dir    string
		keep   int
	}
}

// reader reads typed values from a document and keeps the first error.
//
// The required readers fail on any error. The optional readers, used for
// sections added after the first configuration format, fall back to a
// default when the key or section is missing but still fail on a value of
// the wrong type.
type reader struct {
	doc *confstore.Document
	err error
}

func (r *reader) keep(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

func (r *reader) soft(err error) {
	if confstore.IsClass(err, confstore.ClassLookup) {
		log.Debug("using default value", slog.Any("error", err))

		return
	}

	r.keep(err)
}

func (r *reader) str(section, key string) string {
	v, err := r.doc.GetStr(section, key)
	r.keep(err)

	return v
}

func (r *reader) flag(section, key string) bool {
	v, err := r.doc.GetBool(section, key)
	r.keep(err)

	return v
}

func (r *reader) uint(section, key string) uint32 {
	v, err := r.doc.GetInt(section, key)
	r.keep(err)

	return v
}

func (r *reader) filter(section, key string) confstore.Filter {
	v, err := r.doc.GetFilter(section, key)
	r.keep(err)

	return v
}

func (r *reader) strOr(section, key, def string) string {
	v, err := r.doc.StrOr(section, key, def)
	r.soft(err)

	return v
}

func (r *reader) flagOr(section, key string, def bool) bool {
	v, err := r.doc.BoolOr(section, key, def)
	r.soft(err)

	return v
}

func (r *reader) uintOr(section, key string, def uint32) uint32 {
	v, err := r.doc.IntOr(section, key, def)
	r.soft(err)

	return v
}

// readSettings extracts the fetch settings from doc. cacheDir is the
// default image cache parent directory.
func readSettings(doc *confstore.Document, cacheDir string) (settings, error) {
	var s settings

	r := reader{doc: doc}

	s.center = r.flag(SectionGeneral, "auto center")
	s.pipeline = readPipeline(&r)

	s.text = r.str(SectionFetch, "text")
	s.gap = r.str(SectionFetch, "gap")
	s.reverse = r.flag(SectionFetch, "reverse")

	mode := r.str(SectionArt, "mode")
	s.path = pkg.ExpandHome(r.str(SectionArt, "path"))

	if r.err != nil {
		return s, r.err
	}

	var ok bool

	s.mode, ok = art.ParseMode(mode)
	if !ok {
		return s, ErrArtMode.
			Wrap(errors.New(mode)).
			With(slog.String("section", SectionArt), slog.String("key", "mode"))
	}

	if s.mode == art.ModeImage {
		s.size = r.uint(SectionImage, "size")
		s.filter = r.filter(SectionImage, "filter")

		s.cache.enable = r.flag(SectionCache, "enable") &&
			r.flagOr(SectionCache, "^ images", true)

		s.cache.dir = pkg.ExpandHome(r.strOr(SectionCache, "^ path", ""))
		if s.cache.dir == "" {
			s.cache.dir = filepath.Join(cacheDir, "images")
		}

		if r.flagOr(SectionCache, "clear it?", false) {
			s.cache.keep = int(r.uintOr(SectionCache, "^ delete oldest if more than", 0))
		}
	}

	s.format = readFormat(&r)

	return s, r.err
}

func readPipeline(r *reader) tmpl.Pipeline {
	var p tmpl.Pipeline

	p.Variables = r.flag(SectionGeneral, "enable variables")
	p.Vars.Start = r.str(SectionGeneral, "^ prefix")
	p.Vars.End = r.str(SectionGeneral, "^ suffix")

	p.Cases = r.flag(SectionGeneral, "enable case variables")
	upper := r.str(SectionGeneral, "^ uppercase letter")
	lower := r.str(SectionGeneral, "^ lowercase letter")
	prefix := r.str(SectionGeneral, "^ case prefix")
	suffix := r.str(SectionGeneral, "^ case suffix")

	p.Upper = tmpl.CaseDelims(prefix, suffix, upper)
	p.Lower = tmpl.CaseDelims(prefix, suffix, lower)
	p.Options = []tmpl.Option{tmpl.WithReporter(tmpl.LogReporter)}

	return p
}

func readFormat(r *reader) sysinfo.Format {
	f := sysinfo.DefaultFormat()

	m := &f.Memory
	m.Rounding = int(r.uintOr(SectionMemory, "rounding", uint32(m.Rounding)))
	m.KB = r.strOr(SectionMemory, "kb", m.KB)
	m.MB = r.strOr(SectionMemory, "mb", m.MB)
	m.GB = r.strOr(SectionMemory, "gb", m.GB)

	u := &f.Uptime
	u.Suffix = r.flagOr(SectionUptime, "suffix", u.Suffix)
	u.Plurals = r.flagOr(SectionUptime, "^ plurals", u.Plurals)
	u.Character = r.strOr(SectionUptime, "^ character", u.Character)
	u.HideIfZero = r.flagOr(SectionUptime, "hide if zero", u.HideIfZero)
	u.Day = r.strOr(SectionUptime, "day", u.Day)
	u.Hour = r.strOr(SectionUptime, "hour", u.Hour)
	u.Minute = r.strOr(SectionUptime, "minute", u.Minute)
	u.Second = r.strOr(SectionUptime, "second", u.Second)

	return f
}
