package tmpl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end string
		want       []Token
	}{
		{
			name: "placeholder between literals",
			text: "Hello {NAME}!", start: "{", end: "}",
			want: []Token{Literal("Hello "), Placeholder("NAME"), Literal("!")},
		},
		{
			name: "dangling start marker",
			text: "foo {BAR", start: "{", end: "}",
			want: []Token{Literal("foo {BAR")},
		},
		{
			name: "dangling after placeholder",
			text: "{A} and {B", start: "{", end: "}",
			want: []Token{Placeholder("A"), Literal(" and {B")},
		},
		{
			name: "adjacent placeholders",
			text: "{A}{B}", start: "{", end: "}",
			want: []Token{Placeholder("A"), Placeholder("B")},
		},
		{
			name: "spaces trimmed",
			text: "{  name }", start: "{", end: "}",
			want: []Token{Placeholder("name")},
		},
		{
			name: "tabs kept",
			text: "{\tname}", start: "{", end: "}",
			want: []Token{Placeholder("\tname")},
		},
		{
			name: "empty placeholder",
			text: "a{}b", start: "{", end: "}",
			want: []Token{Literal("a"), Placeholder(""), Literal("b")},
		},
		{
			name: "multi-character markers",
			text: "[U]Loud[/U] and [U]x", start: "[U]", end: "[/U]",
			want: []Token{Placeholder("Loud"), Literal(" and [U]x")},
		},
		{
			name: "end marker alone",
			text: "a } b", start: "{", end: "}",
			want: []Token{Literal("a } b")},
		},
		{
			name: "same start and end marker",
			text: "x%A%y", start: "%", end: "%",
			want: []Token{Literal("x"), Placeholder("A"), Literal("y")},
		},
		{
			name: "unicode text",
			text: "│ {USER} ╮", start: "{", end: "}",
			want: []Token{Literal("│ "), Placeholder("USER"), Literal(" ╮")},
		},
		{
			name: "empty text",
			text: "", start: "{", end: "}",
			want: nil,
		},
		{
			name: "empty start marker",
			text: "{A}", start: "", end: "}",
			want: []Token{Literal("{A}")},
		},
		{
			name: "empty end marker",
			text: "{A}", start: "{", end: "",
			want: []Token{Literal("{A}")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lex(tt.text, tt.start, tt.end)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lex(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestTokenize_Restartable(t *testing.T) {
	seq := Tokenize("a {B} c {D}", "{", "}")

	var first, second []Token
	for tok := range seq {
		first = append(first, tok)
	}

	for tok := range seq {
		second = append(second, tok)
	}

	assert.Len(t, first, 4)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestTokenize_EarlyBreak(t *testing.T) {
	var got []Token

	for tok := range Tokenize("a {B} c {D} e", "{", "}") {
		got = append(got, tok)
		if tok.Kind == KindPlaceholder {
			break
		}
	}

	assert.Equal(t, []Token{Literal("a "), Placeholder("B")}, got)
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, `literal("a")`, Literal("a").String())
	assert.Equal(t, `placeholder("B")`, Placeholder("B").String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func FuzzLex(f *testing.F) {
	f.Add("Hello {NAME}!", "{", "}")
	f.Add("[U]a[/U][L]b", "[U]", "[/U]")
	f.Add("{{}}", "{{", "}}")

	f.Fuzz(func(t *testing.T, text, start, end string) {
		var literal int

		for _, tok := range Lex(text, start, end) {
			if tok.Kind == KindLiteral {
				if tok.Text == "" {
					t.Fatalf("empty literal for %q", text)
				}

				literal += len(tok.Text)
			}
		}

		if literal > len(text) {
			t.Fatalf("literal text longer than input %q", text)
		}
	})
}
