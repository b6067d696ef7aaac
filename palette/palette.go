// Package palette defines the color and text attribute symbols available to
// fetch templates, such as {BLUE} or {B}.
package palette

import (
	"maps"

	"github.com/charmbracelet/x/ansi"
)

func fg(c ansi.BasicColor) ansi.Style { return ansi.Style{}.ForegroundColor(c) }

// Selectable styles.
//
//nolint:gochecknoglobals
var (
	Reset     = ansi.Style{}.Reset()
	Bold      = ansi.Style{}.Bold()
	Italic    = ansi.Style{}.Italic(true)
	Underline = ansi.Style{}.Underline(true)
	Blink     = ansi.Style{}.Blink(true)
	Reverse   = ansi.Style{}.Reverse(true)
	Invisible = ansi.Style{}.Conceal(true)
	Crossed   = ansi.Style{}.Strikethrough(true)

	Black   = fg(ansi.Black)
	Red     = fg(ansi.Red)
	Green   = fg(ansi.Green)
	Yellow  = fg(ansi.Yellow)
	Blue    = fg(ansi.Blue)
	Magenta = fg(ansi.Magenta)
	Cyan    = fg(ansi.Cyan)
	White   = fg(ansi.White)

	Gray         = fg(ansi.BrightBlack)
	LightRed     = fg(ansi.BrightRed)
	LightGreen   = fg(ansi.BrightGreen)
	LightYellow  = fg(ansi.BrightYellow)
	LightBlue    = fg(ansi.BrightBlue)
	LightMagenta = fg(ansi.BrightMagenta)
	LightCyan    = fg(ansi.BrightCyan)
	LightGray    = fg(ansi.BrightWhite)
)

// Entry is a named symbol.
type Entry struct {
	Name  string
	Style ansi.Style
}

//nolint:gochecknoglobals
var entries = []Entry{
	{"BLACK", Black},
	{"RED", Red},
	{"GREEN", Green},
	{"YELLOW", Yellow},
	{"BLUE", Blue},
	{"MAGENTA", Magenta},
	{"CYAN", Cyan},
	{"WHITE", White},
	{"GRAY", Gray},
	{"LIGHT_RED", LightRed},
	{"LIGHT_GREEN", LightGreen},
	{"LIGHT_YELLOW", LightYellow},
	{"LIGHT_BLUE", LightBlue},
	{"LIGHT_MAGENTA", LightMagenta},
	{"LIGHT_CYAN", LightCyan},
	{"LIGHT_GRAY", LightGray},
	{"RESET", Reset},
	{"BOLD", Bold},
	{"ITALIC", Italic},
	{"UNDERLINE", Underline},
	{"BLINK", Blink},
	{"REVERSE", Reverse},
	{"INVISIBLE", Invisible},
	{"CROSSED", Crossed},

	// short forms
	{"R", Reset},
	{"B", Bold},
	{"U", Underline},
	{"BL", Blink},
	{"IN", Invisible},
	{"C", Crossed},
	{"I", Italic},
}

// Entries returns every symbol in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}

// Symbols returns a new map from symbol name to escape sequence.
func Symbols() map[string]string {
	m := make(map[string]string, len(entries))
	Merge(m)

	return m
}

// Merge adds every palette symbol to dst, replacing existing entries of the
// same name.
func Merge(dst map[string]string) {
	for _, e := range entries {
		dst[e.Name] = e.Style.String()
	}
}

// Without returns a copy of src with every palette symbol removed.
func Without(src map[string]string) map[string]string {
	out := maps.Clone(src)
	for _, e := range entries {
		delete(out, e.Name)
	}

	return out
}
