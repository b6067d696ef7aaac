package tmpl

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/lightfetch/log"
)

// Symbols maps an uppercased placeholder name to its replacement text.
type Symbols map[string]string

// Case selects the folding applied by [Template.FoldCase].
type Case uint8

const (
	Upper Case = iota
	Lower
)

func (c Case) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "Case(" + strconv.Itoa(int(c)) + ")"
	}
}

// DiagKind identifies a non-fatal rendering condition.
type DiagKind uint8

const (
	// DiagUnresolved is a placeholder with no entry in the symbol table.
	DiagUnresolved DiagKind = iota
	// DiagInvalidCase is a fold request with an unknown [Case].
	DiagInvalidCase
)

func (k DiagKind) String() string {
	switch k {
	case DiagUnresolved:
		return "unresolved placeholder"
	case DiagInvalidCase:
		return "invalid case"
	default:
		return "DiagKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Diagnostic describes a condition that degraded the output without stopping
// it. Name is the placeholder name as written in the template.
type Diagnostic struct {
	Kind DiagKind
	Name string
	Case Case
}

// LogValue implements slog.LogValuer.
func (d Diagnostic) LogValue() slog.Value {
	if d.Kind == DiagInvalidCase {
		return slog.GroupValue(
			slog.String("kind", d.Kind.String()),
			slog.String("case", d.Case.String()),
		)
	}

	return slog.GroupValue(
		slog.String("kind", d.Kind.String()),
		slog.String("name", d.Name),
	)
}

// Reporter receives diagnostics as they occur.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to a [Reporter].
type ReporterFunc func(Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// LogReporter writes each diagnostic as a warning to the default logger.
//
//nolint:gochecknoglobals
var LogReporter Reporter = ReporterFunc(func(d Diagnostic) {
	switch d.Kind {
	case DiagUnresolved:
		log.Warn("placeholder unresolved", slog.String("name", d.Name))
	case DiagInvalidCase:
		log.Warn("case invalid", slog.String("case", d.Case.String()))
	default:
		log.Warn("template diagnostic", slog.Any("diagnostic", d))
	}
})

type config struct {
	reporter Reporter
}

// Option configures a [Template].
type Option func(config) config

// WithReporter sets the destination of diagnostics. A nil reporter discards
// them.
func WithReporter(r Reporter) Option {
	return func(c config) config {
		c.reporter = r

		return c
	}
}

// Template is a lexed template that can be rendered any number of times.
type Template struct {
	tokens []Token
	config
}

// New lexes text with the given markers. See [Tokenize].
func New(text, start, end string, opts ...Option) *Template {
	tokens := Lex(text, start, end)

	log.Trace("template lexed",
		slog.String("start", start),
		slog.String("end", end),
		slog.Int("tokens", len(tokens)),
	)

	return FromTokens(tokens, opts...)
}

// FromTokens returns a template over a copy of tokens.
func FromTokens(tokens []Token, opts ...Option) *Template {
	cfg := config{reporter: LogReporter}

	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return &Template{tokens: slices.Clone(tokens), config: cfg}
}

// Tokens returns a copy of the lexed tokens.
func (t *Template) Tokens() []Token { return slices.Clone(t.tokens) }

// Substitute renders t, replacing each placeholder with the entry for its
// uppercased name. A placeholder without an entry renders as nothing and is
// reported as [DiagUnresolved].
func (t *Template) Substitute(symbols Symbols) string {
	var sb strings.Builder

	for _, tok := range t.tokens {
		if tok.Kind == KindLiteral {
			sb.WriteString(tok.Text)

			continue
		}

		value, ok := symbols[strings.ToUpper(tok.Text)]
		if !ok {
			t.report(Diagnostic{Kind: DiagUnresolved, Name: tok.Text})

			continue
		}

		sb.WriteString(value)
	}

	return sb.String()
}

// FoldCase renders t, replacing each placeholder with its own name folded to
// mode. An unknown mode renders placeholders as nothing and is reported once
// per placeholder as [DiagInvalidCase].
func (t *Template) FoldCase(mode Case) string {
	var sb strings.Builder

	for _, tok := range t.tokens {
		if tok.Kind == KindLiteral {
			sb.WriteString(tok.Text)

			continue
		}

		switch mode {
		case Upper:
			sb.WriteString(strings.ToUpper(tok.Text))
		case Lower:
			sb.WriteString(strings.ToLower(tok.Text))
		default:
			t.report(Diagnostic{Kind: DiagInvalidCase, Name: tok.Text, Case: mode})
		}
	}

	return sb.String()
}

func (t *Template) report(d Diagnostic) {
	if t.reporter != nil {
		t.reporter.Report(d)
	}
}
