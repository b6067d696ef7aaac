package cmd

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/lightfetch/art"
	"github.com/ardnew/lightfetch/layout"
	"github.com/ardnew/lightfetch/log"
	"github.com/ardnew/lightfetch/palette"
	"github.com/ardnew/lightfetch/sysinfo"
	"github.com/ardnew/lightfetch/tmpl"
)

// Fetch prints the configured fetch text beside the configured art.
type Fetch struct{}

// Run executes the fetch command.
func (f *Fetch) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := envFrom(ctx)

	doc, err := env.load()
	if err != nil {
		return err
	}

	s, err := readSettings(doc, env.CacheDir)
	if err != nil {
		return err
	}

	info, err := env.Collector.Collect(ctx)
	if err != nil {
		return ErrCollect.Wrap(err)
	}

	picture, err := loadArt(env, s)
	if err != nil {
		return err
	}

	_, err = io.WriteString(env.Stdout, compose(s, picture, symbols(info, s.format, true)))

	return err
}

// symbols returns the template symbols of info, including the layout
// markers and, if colors is set, the palette.
func symbols(info *sysinfo.Info, f sysinfo.Format, colors bool) tmpl.Symbols {
	s := tmpl.Symbols(info.Symbols(f))

	s["FILL"] = layout.FillMarker
	s["IGNORE"] = layout.IgnoreMarker

	if colors {
		palette.Merge(s)
	}

	return s
}

func loadArt(env Env, s settings) (string, error) {
	if s.mode == art.ModeASCII {
		out, err := art.NewRenderer(env.Fs, nil).ASCII(s.path)
		if err != nil {
			return "", ErrRenderArt.Wrap(err).With(slog.String("path", s.path))
		}

		return out, nil
	}

	var cache *art.Cache
	if s.cache.enable {
		cache = art.NewCache(env.Fs, s.cache.dir, s.cache.keep)
	}

	out, err := art.NewRenderer(env.Fs, cache).Image(s.path, s.size, s.filter)
	if err != nil {
		return "", ErrRenderArt.Wrap(err).With(
			slog.String("path", s.path),
			slog.String("filter", s.filter.String()),
		)
	}

	return out, nil
}

// compose renders the fetch text and lays it out beside picture, which is
// used verbatim.
//
// The gap is applied to every fetch line before centering, so blank lines
// added by centering are not indented.
func compose(s settings, picture string, symbols tmpl.Symbols) string {
	fetch := layout.Gap(layout.Lines(s.text), s.gap, s.reverse)
	pic := layout.Lines(picture)

	if s.center {
		rows := max(len(fetch), len(pic))
		fetch = layout.Center(fetch, rows)
		pic = layout.Center(pic, rows)
	}

	text := s.pipeline.Render(strings.Join(fetch, "\n"), symbols)
	fetch = layout.Fill(strings.Split(text, "\n"))

	log.Debug("composed fetch",
		slog.Int("fetch rows", len(fetch)),
		slog.Int("art rows", len(pic)),
		slog.Bool("reverse", s.reverse),
	)

	b := layout.NewBuilder(pic, fetch)
	if s.reverse {
		b.Swap()
	}

	return b.String()
}
