package tmpl

import "strings"

// LetterMarker is replaced by the case letter in case region delimiters.
const LetterMarker = "{letter}"

// Delims is a start and end marker pair.
type Delims struct {
	Start, End string
}

// CaseDelims builds the markers of a case region from prefix and suffix
// patterns, such as "[{letter}]" and "[/{letter}]", and a letter such as
// "U". Double quotes are removed.
func CaseDelims(prefix, suffix, letter string) Delims {
	expand := func(s string) string {
		return strings.ReplaceAll(strings.ReplaceAll(s, LetterMarker, letter), `"`, "")
	}

	return Delims{Start: expand(prefix), End: expand(suffix)}
}

// Pipeline renders fetch text in a fixed order: variable substitution, then
// upper case regions, then lower case regions. Each stage lexes the output
// of the previous one, so a substituted value may itself contain case
// region markers.
type Pipeline struct {
	// Variables enables substitution of placeholders delimited by Vars.
	Variables bool
	Vars      Delims

	// Cases enables folding of regions delimited by Upper and Lower.
	Cases bool
	Upper Delims
	Lower Delims

	Options []Option
}

// Render runs p over text.
func (p Pipeline) Render(text string, symbols Symbols) string {
	if p.Variables {
		text = New(text, p.Vars.Start, p.Vars.End, p.Options...).Substitute(symbols)
	}

	if p.Cases {
		text = New(text, p.Upper.Start, p.Upper.End, p.Options...).FoldCase(Upper)
		text = New(text, p.Lower.Start, p.Lower.End, p.Options...).FoldCase(Lower)
	}

	return text
}
