package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// prettyStyle holds the lipgloss styles used to colorize one text record.
type prettyStyle struct {
	key, str, num, yes, no, dur, time, source lipgloss.Style

	level map[slog.Level]lipgloss.Style
}

// newPrettyStyle creates styles bound to a renderer for w, so color output is
// only emitted when w is a terminal that supports it.
func newPrettyStyle(w io.Writer) prettyStyle {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return prettyStyle{
		key:    fg("8"),
		str:    fg("6"),
		num:    fg("3"),
		yes:    fg("2"),
		no:     fg("1"),
		dur:    fg("5"),
		time:   fg("8"),
		source: fg("8").Italic(true),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): fg("8").Bold(true),
			slog.LevelDebug:        fg("4").Bold(true),
			slog.LevelInfo:         fg("2").Bold(true),
			slog.LevelWarn:         fg("3").Bold(true),
			slog.LevelError:        fg("1").Bold(true),
		},
	}
}

func (s prettyStyle) forLevel(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return s.level[slog.LevelError]
	case l >= slog.LevelWarn:
		return s.level[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return s.level[slog.LevelInfo]
	case l >= slog.LevelDebug:
		return s.level[slog.LevelDebug]
	default:
		return s.level[slog.Level(LevelTrace)]
	}
}

// prettyTextHandler implements a colorized single-line text handler.
//
//	3:04PM WARN unresolved placeholder name=DISTRO line=3
type prettyTextHandler struct {
	opts       slog.HandlerOptions
	style      prettyStyle
	formatTime FormatTime
	mu         *sync.Mutex
	w          io.Writer
	group      string // dotted prefix applied to attribute keys
	preformat  []byte // attributes added with WithAttrs
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:       *opts,
		style:      newPrettyStyle(w),
		formatTime: formatTime,
		mu:         &sync.Mutex{},
		w:          w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() && h.formatTime != nil {
		if ts := h.formatTime(r.Time); ts != "" {
			buf.WriteString(h.style.time.Render(ts))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(h.style.forLevel(r.Level).Render(
		strings.ToUpper(Level(r.Level).String()),
	))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			buf.WriteByte(' ')
			buf.WriteString(h.style.source.Render(
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	if len(h.preformat) > 0 {
		buf.Write(h.preformat)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.group, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(append([]byte(nil), h.preformat...))
	for _, a := range attrs {
		h.writeAttr(buf, h.group, a)
	}

	clone := *h
	clone.preformat = buf.Bytes()

	return &clone
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.group = h.group + name + "."

	return &clone
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, prefix, ga)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.style.key.Render(group + a.Key))
	buf.WriteByte('=')
	h.writeValue(buf, a.Value)
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(h.style.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(h.style.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(h.style.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(h.style.num.Render(
			strconv.FormatFloat(v.Float64(), 'g', -1, 64),
		))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(h.style.yes.Render("true"))
		} else {
			buf.WriteString(h.style.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(h.style.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(h.style.time.Render(v.Time().String()))

	default:
		if err, ok := v.Any().(error); ok {
			buf.WriteString(h.style.no.Render(err.Error()))

			return
		}

		buf.WriteString(h.style.str.Render(v.String()))
	}
}
