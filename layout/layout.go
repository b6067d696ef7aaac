// Package layout arranges rendered art and fetch text side by side.
//
// All widths are measured in terminal cells with escape sequences ignored,
// so colored text lines up the same as plain text.
package layout

import (
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/samber/lo"
)

const (
	// FillMarker pads the text before it to the width of the widest filled
	// line.
	FillMarker = "{FILL}"
	// IgnoreMarker pads a line like FillMarker but leaves it out of the
	// width computation.
	IgnoreMarker = "{IGNORE}"
)

// DefaultTab is the minimum width of every column except the last.
const DefaultTab = 15

// Lines splits s into lines. A trailing newline does not start a new line,
// and a carriage return before each newline is removed.
func Lines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// Width returns the number of cells s occupies on a terminal.
func Width(s string) int { return ansi.StringWidth(s) }

// Fill resolves [FillMarker] and [IgnoreMarker] in lines.
//
// The text before the first FillMarker of each line that has one, and no
// IgnoreMarker, determines the target width. Every line holding either
// marker has that text padded with spaces to the target width, followed by
// the rest of the line. Lines without markers are unchanged.
func Fill(lines []string) []string {
	longest := 0

	for _, l := range lines {
		if strings.Contains(l, IgnoreMarker) || !strings.Contains(l, FillMarker) {
			continue
		}

		head, _, _ := strings.Cut(l, FillMarker)
		longest = max(longest, Width(head))
	}

	return lo.Map(lines, func(l string, _ int) string {
		if !strings.Contains(l, FillMarker) && !strings.Contains(l, IgnoreMarker) {
			return l
		}

		head, tail, _ := strings.Cut(l, FillMarker)
		head = strings.ReplaceAll(head, IgnoreMarker, "")
		tail = strings.NewReplacer(FillMarker, "", IgnoreMarker, "").Replace(tail)

		return pad(head, longest) + tail
	})
}

// Center surrounds lines with empty lines so that they sit in the middle of
// rows. Lines are returned unchanged if they already fill rows.
func Center(lines []string, rows int) []string {
	if len(lines) >= rows {
		return lines
	}

	diff := (rows - len(lines)) / 2
	blank := make([]string, diff)

	return slices.Concat(blank, lines, blank)
}

// Gap joins gap to each line, before it or, if after is set, behind it.
func Gap(lines []string, gap string, after bool) []string {
	return lo.Map(lines, func(l string, _ int) string {
		if after {
			return l + gap
		}

		return gap + l
	})
}

// Builder joins columns of lines into rows.
type Builder struct {
	Columns [][]string
	// Tab is the minimum width of every column except the last.
	Tab int
}

// NewBuilder returns a Builder over columns with [DefaultTab].
func NewBuilder(columns ...[]string) *Builder {
	return &Builder{Columns: columns, Tab: DefaultTab}
}

// Swap reverses the column order.
func (b *Builder) Swap() *Builder {
	slices.Reverse(b.Columns)

	return b
}

// String renders every row followed by a newline. Each column except the
// last is padded to the larger of Tab and its widest cell. A column shorter
// than the others contributes blank cells.
func (b *Builder) String() string {
	if len(b.Columns) == 0 {
		return ""
	}

	widths := lo.Map(b.Columns, func(col []string, _ int) int {
		return max(b.Tab, lo.Max(lo.Map(col, func(s string, _ int) int { return Width(s) })))
	})

	rows := lo.Max(lo.Map(b.Columns, func(col []string, _ int) int { return len(col) }))
	last := len(b.Columns) - 1

	var sb strings.Builder

	for row := range rows {
		for i, col := range b.Columns {
			cell := ""
			if row < len(col) {
				cell = col[row]
			}

			if i == last {
				sb.WriteString(cell)

				continue
			}

			sb.WriteString(pad(cell, widths[i]))
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

func pad(s string, width int) string {
	if n := width - Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}

	return s
}
