package tmpl

import (
	"iter"
	"slices"
	"strings"
)

type state uint8

const (
	scanning state = iota
	inside
)

// lexer walks text with a cursor that only moves forward. Literal text is
// accumulated from lit up to pos and flushed before each placeholder, so a
// dangling start marker merges with the text that precedes it.
type lexer struct {
	text, start, end string

	state state
	pos   int
	lit   int
}

// Tokenize returns the tokens of text delimited by the start and end
// markers. The sequence is lexed afresh each time it is ranged over.
//
// A start marker without a matching end marker, and everything after it, is
// literal text. Empty literals are never produced. If either marker is empty
// the whole text is a single literal.
func Tokenize(text, start, end string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if start == "" || end == "" {
			if text != "" {
				yield(Literal(text))
			}

			return
		}

		l := lexer{text: text, start: start, end: end}
		l.run(yield)
	}
}

// Lex returns the tokens of text as a slice. See [Tokenize].
func Lex(text, start, end string) []Token {
	return slices.Collect(Tokenize(text, start, end))
}

func (l *lexer) run(yield func(Token) bool) {
	for l.pos < len(l.text) {
		switch l.state {
		case scanning:
			i := strings.Index(l.text[l.pos:], l.start)
			if i < 0 {
				l.pos = len(l.text)

				break
			}

			l.pos += i
			l.state = inside

		case inside:
			body := l.pos + len(l.start)

			j := strings.Index(l.text[body:], l.end)
			if j < 0 {
				l.pos = len(l.text)

				break
			}

			if !l.flush(yield) {
				return
			}

			if !yield(Placeholder(strings.Trim(l.text[body:body+j], " "))) {
				return
			}

			l.pos = body + j + len(l.end)
			l.lit = l.pos
			l.state = scanning
		}
	}

	l.flush(yield)
}

func (l *lexer) flush(yield func(Token) bool) bool {
	if l.lit == l.pos {
		return true
	}

	tok := Literal(l.text[l.lit:l.pos])
	l.lit = l.pos

	return yield(tok)
}
