package confstore

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Kind identifies a specific configuration failure.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRead
	KindWrite
	KindMissingClosingBracket
	KindMissingKeyForContinuation
	KindEmptyKey
	KindSectionNotFound
	KindKeyNotFound
	KindKeyHasNoValue
	KindNotABoolean
	KindNotAnInteger
	KindUnknownFilterName

	kindCount
)

// Class groups kinds by how a caller is expected to react to them.
type Class uint8

const (
	ClassUnknown Class = iota
	// ClassIO errors mean the file could not be read or written. Fatal.
	ClassIO
	// ClassSyntax errors abort parsing; no partial document is returned.
	ClassSyntax
	// ClassLookup errors are returned per accessor call.
	ClassLookup
	// ClassType errors are returned per accessor call.
	ClassType
)

func (c Class) String() string {
	switch c {
	case ClassIO:
		return "io"
	case ClassSyntax:
		return "syntax"
	case ClassLookup:
		return "lookup"
	case ClassType:
		return "type"
	default:
		return "unknown"
	}
}

//nolint:gochecknoglobals
var kindInfo = [kindCount]struct {
	class Class
	name  string
	msg   string
}{
	KindUnknown:                   {ClassUnknown, "unknown", "configuration error"},
	KindRead:                      {ClassIO, "read", "read configuration file"},
	KindWrite:                     {ClassIO, "write", "write configuration file"},
	KindMissingClosingBracket:     {ClassSyntax, "missing-closing-bracket", "missing closing bracket"},
	KindMissingKeyForContinuation: {ClassSyntax, "missing-key-for-continuation", "continuation line without a key"},
	KindEmptyKey:                  {ClassSyntax, "empty-key", "empty key"},
	KindSectionNotFound:           {ClassLookup, "section-not-found", "section not found"},
	KindKeyNotFound:               {ClassLookup, "key-not-found", "key not found"},
	KindKeyHasNoValue:             {ClassLookup, "key-has-no-value", "key has no value"},
	KindNotABoolean:               {ClassType, "not-a-boolean", "not a boolean"},
	KindNotAnInteger:              {ClassType, "not-an-integer", "not an integer"},
	KindUnknownFilterName:         {ClassType, "unknown-filter-name", "unknown filter name"},
}

// Class returns the class that k belongs to.
func (k Kind) Class() Class {
	if k >= kindCount {
		return ClassUnknown
	}

	return kindInfo[k].class
}

func (k Kind) String() string {
	if k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindInfo[k].name
}

// Error is a configuration error carrying its kind, the 1-based line number
// for syntax errors, and structured attributes for logging.
// It implements both error and slog.LogValuer.
type Error struct {
	kind   Kind
	path   string
	line   int
	detail string
	hint   string
	err    error
	attrs  []slog.Attr
}

// NewError creates a new Error of the given kind.
func NewError(kind Kind) *Error {
	return &Error{kind: kind}
}

// Predefined errors (sentinel values). Match with [errors.Is], which compares
// kinds only.
//
//nolint:gochecknoglobals
var (
	ErrReadConfig                = NewError(KindRead)
	ErrWriteConfig               = NewError(KindWrite)
	ErrMissingClosingBracket     = NewError(KindMissingClosingBracket)
	ErrMissingKeyForContinuation = NewError(KindMissingKeyForContinuation)
	ErrEmptyKey                  = NewError(KindEmptyKey)
	ErrSectionNotFound           = NewError(KindSectionNotFound)
	ErrKeyNotFound               = NewError(KindKeyNotFound)
	ErrKeyHasNoValue             = NewError(KindKeyHasNoValue)
	ErrNotABoolean               = NewError(KindNotABoolean)
	ErrNotAnInteger              = NewError(KindNotAnInteger)
	ErrUnknownFilterName         = NewError(KindUnknownFilterName)
	ErrFileExists                = NewError(KindWrite).Detail("file exists (use --force to overwrite)")
)

// Error implements the error interface.
//
//	<msg>[ in <path>][ on line <n>][: <detail>][ (did you mean <hint>?)][: <cause>]
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Kind().message())

	if e.path != "" {
		sb.WriteString(" in ")
		sb.WriteString(strconv.Quote(e.path))
	}

	if e.line > 0 {
		sb.WriteString(" on line ")
		sb.WriteString(strconv.Itoa(e.line))
	}

	if e.detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.detail)
	}

	if e.hint != "" {
		sb.WriteString(" (did you mean ")
		sb.WriteString(strconv.Quote(e.hint))
		sb.WriteString("?)")
	}

	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}

	return sb.String()
}

func (k Kind) message() string {
	if k >= kindCount {
		return kindInfo[KindUnknown].msg
	}

	return kindInfo[k].msg
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same kind. A target carrying
// a detail message, such as [ErrFileExists], must also match that detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.kind == e.kind && (t.detail == "" || t.detail == e.detail)
}

// Kind returns the kind of e.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindUnknown
	}

	return e.kind
}

// Class returns the class of e's kind.
func (e *Error) Class() Class { return e.Kind().Class() }

// Path returns the file a syntax error was found in, or "".
func (e *Error) Path() string { return e.path }

// Line returns the 1-based line number of a syntax error, or 0.
func (e *Error) Line() int { return e.line }

// Hint returns the closest known name suggested for a lookup or type error.
func (e *Error) Hint() string { return e.hint }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+6)

	attrs = append(attrs,
		slog.String("error", e.Kind().message()),
		slog.String("class", e.Class().String()),
	)

	if e.path != "" {
		attrs = append(attrs, slog.String("path", e.path))
	}

	if e.line > 0 {
		attrs = append(attrs, slog.Int("line", e.line))
	}

	if e.detail != "" {
		attrs = append(attrs, slog.String("detail", e.detail))
	}

	if e.hint != "" {
		attrs = append(attrs, slog.String("hint", e.hint))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

func (e *Error) clone() *Error {
	c := *e
	c.attrs = append([]slog.Attr(nil), e.attrs...)

	return &c
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// At creates a new Error positioned at the given 1-based line.
func (e *Error) At(line int) *Error {
	c := e.clone()
	c.line = line

	return c
}

// In creates a new Error located in the named file.
func (e *Error) In(path string) *Error {
	c := e.clone()
	c.path = path

	return c
}

// Detail creates a new Error with a human-readable detail message.
func (e *Error) Detail(detail string) *Error {
	c := e.clone()
	c.detail = detail

	return c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = append(c.attrs, attrs...)

	return c
}

// Suggest creates a new Error whose hint is the candidate closest to name.
// The hint is left empty if no candidate resembles name.
func (e *Error) Suggest(name string, candidates []string) *Error {
	c := e.clone()
	c.hint = closest(name, candidates)

	return c
}

// IsClass reports whether err is an *Error belonging to class c.
func IsClass(err error, c Class) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Class() == c
}

// closest returns the candidate that best matches name, trying name as a
// fuzzy pattern first and then each candidate as a pattern over name.
func closest(name string, candidates []string) string {
	name = strings.TrimSpace(name)
	if name == "" || len(candidates) == 0 {
		return ""
	}

	if matches := fuzzy.Find(name, candidates); len(matches) > 0 {
		return matches[0].Str
	}

	var (
		best  string
		score = -1 << 31
	)

	for _, cand := range candidates {
		if cand == "" {
			continue
		}

		matches := fuzzy.Find(cand, []string{name})
		if len(matches) > 0 && matches[0].Score > score {
			best, score = cand, matches[0].Score
		}
	}

	return best
}
