// Package tmpl lexes and renders placeholder templates.
//
// A template is literal text interleaved with placeholders between a start
// and end marker:
//
//	{blue}{USERNAME}{reset}@{HOSTNAME}
//
// [Template.Substitute] replaces every placeholder with the entry of its
// uppercased name in a [Symbols] table. [Template.FoldCase] replaces every
// placeholder with its own text folded to upper or lower case, which is how
// regions like "[U]loud[/U]" are rendered. Neither stops on bad input:
// unresolved names and unknown case modes go to a [Reporter] and render as
// nothing.
package tmpl
