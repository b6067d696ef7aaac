package tmpl

import "strconv"

// Kind tags a [Token] as literal text or a placeholder.
type Kind uint8

const (
	// KindLiteral is text copied to the output verbatim.
	KindLiteral Kind = iota
	// KindPlaceholder is a named hole between a start and end marker.
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one segment of a template. For a placeholder, Text is the name
// with surrounding spaces removed.
type Token struct {
	Kind Kind
	Text string
}

// Literal returns a literal token.
func Literal(text string) Token { return Token{Kind: KindLiteral, Text: text} }

// Placeholder returns a placeholder token.
func Placeholder(name string) Token { return Token{Kind: KindPlaceholder, Text: name} }

func (t Token) String() string {
	return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"
}
