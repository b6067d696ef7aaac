package confstore

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultComment starts a comment that runs to the end of the line.
	DefaultComment = '#'
	// DefaultDelimiter separates a key from its value.
	DefaultDelimiter = '='
	// DefaultSection holds keys that appear before any section header.
	DefaultSection = "default"
)

// options holds the lexical settings of the configuration language.
type options struct {
	comment        rune
	delimiter      rune
	defaultSection string
	lineSeparator  string
}

// Option applies a configuration option to options.
type Option func(options) options

func makeOptions(opts ...Option) options {
	o := options{
		comment:        DefaultComment,
		delimiter:      DefaultDelimiter,
		defaultSection: DefaultSection,
		lineSeparator:  LineSeparator,
	}

	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	return o
}

// WithComment sets the comment character.
func WithComment(r rune) Option {
	return func(o options) options {
		o.comment = r

		return o
	}
}

// WithDelimiter sets the key/value delimiter character.
func WithDelimiter(r rune) Option {
	return func(o options) options {
		o.delimiter = r

		return o
	}
}

// WithDefaultSection sets the section that receives keys declared before any
// section header.
func WithDefaultSection(name string) Option {
	return func(o options) options {
		o.defaultSection = name

		return o
	}
}

// WithLineSeparator sets the string that joins continuation lines.
func WithLineSeparator(sep string) Option {
	return func(o options) options {
		o.lineSeparator = sep

		return o
	}
}

// parser is the line-oriented state: the current section and key.
type parser struct {
	options

	doc     *Document
	section string
	key     string // empty until the first key is declared
}

// Parse turns configuration text into a [Document].
//
// Each physical line is handled in order:
//
//   - Everything from the first comment character on is dropped, even inside
//     quotes.
//   - Blank lines are skipped.
//   - "[ name ]" opens section "name". Re-declaring a section reopens it.
//   - A line starting with whitespace continues the value of the most recent
//     key, joined with the line separator. The key persists across section
//     headers; if it does not exist in the current section it is created.
//   - "key = value" assigns a trimmed value. "key =" assigns an [Empty] value.
//   - A line without a delimiter declares an [Unset] key.
//
// The first syntax error aborts parsing and no Document is returned.
func Parse(text string, opts ...Option) (*Document, error) {
	p := parser{
		options: makeOptions(opts...),
		doc:     NewDocument(),
	}

	p.section = p.defaultSection

	for num, line := range lines(text) {
		err := p.line(num, line)
		if err != nil {
			return nil, err
		}
	}

	return p.doc, nil
}

// lines yields each physical line of text with its 1-based number. A
// trailing carriage return is removed.
func lines(text string) func(func(int, string) bool) {
	return func(yield func(int, string) bool) {
		num := 0

		for line := range strings.SplitSeq(text, "\n") {
			num++

			if !yield(num, strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

func (p *parser) line(num int, line string) error {
	if i := strings.IndexRune(line, p.comment); i >= 0 {
		line = line[:i]
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	switch {
	case trimmed[0] == '[':
		return p.header(num, trimmed)

	case startsWithSpace(line):
		return p.continuation(num, trimmed)

	default:
		return p.assignment(num, trimmed)
	}
}

func (p *parser) header(num int, trimmed string) error {
	end := strings.LastIndexByte(trimmed, ']')
	if end < 0 {
		return ErrMissingClosingBracket.At(num).
			Detail(trimmed).
			With(slog.String("text", trimmed))
	}

	p.section = strings.TrimSpace(trimmed[1:end])

	return nil
}

func (p *parser) continuation(num int, trimmed string) error {
	if p.key == "" {
		return ErrMissingKeyForContinuation.At(num).
			Detail(trimmed).
			With(slog.String("section", p.section), slog.String("text", trimmed))
	}

	sec := p.doc.open(p.section)
	slot, _ := sec.Lookup(p.key)
	sec.set(p.key, slot.continued(p.lineSeparator, trimmed))

	return nil
}

func (p *parser) assignment(num int, trimmed string) error {
	i := strings.IndexRune(trimmed, p.delimiter)
	if i < 0 {
		p.key = trimmed
		p.doc.Set(p.section, trimmed, UnsetSlot())

		return nil
	}

	key := strings.TrimSpace(trimmed[:i])
	if key == "" {
		return ErrEmptyKey.At(num).
			With(slog.String("section", p.section), slog.String("text", trimmed))
	}

	value := strings.TrimSpace(trimmed[i+utf8.RuneLen(p.delimiter):])

	p.key = key
	p.doc.Set(p.section, key, TextSlot(value))

	return nil
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsSpace(r)
}
