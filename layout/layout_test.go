package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\r\n\r\nb"))
	assert.Equal(t, []string{""}, Lines("\n"))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 5, Width("\x1b[34mhello\x1b[0m"))
	assert.Equal(t, 3, Width("╭─╮"))
	assert.Equal(t, 2, Width("\x1b[38;2;1;2;3m▀\x1b[48;2;4;5;6m▄\x1b[0m"))
}

func TestFill(t *testing.T) {
	in := []string{
		"╭──────────╮{IGNORE}",
		"│ ab {FILL}│",
		"│ \x1b[31mabcd\x1b[0m {FILL}│",
		"│ top{IGNORE}{FILL}│",
		"plain",
	}

	want := []string{
		"╭──────────╮",
		"│ ab   │",
		"│ \x1b[31mabcd\x1b[0m │",
		"│ top  │",
		"plain",
	}

	assert.Equal(t, want, Fill(in))
}

func TestFill_IgnoredLinesDoNotWiden(t *testing.T) {
	got := Fill([]string{
		"a very long ignored line {FILL}{IGNORE}|",
		"ab{FILL}|",
		"abc{FILL}|",
	})

	assert.Equal(t, []string{"a very long ignored line |", "ab |", "abc|"}, got)
}

func TestFill_ExtraMarkersRemoved(t *testing.T) {
	assert.Equal(t, []string{"a|b|"}, Fill([]string{"a{FILL}|b{FILL}|"}))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, []string{"", "a", "b", ""}, Center([]string{"a", "b"}, 5))
	assert.Equal(t, []string{"", "a", ""}, Center([]string{"a"}, 4))
	assert.Equal(t, []string{"a", "b"}, Center([]string{"a", "b"}, 2))
	assert.Equal(t, []string{"a", "b"}, Center([]string{"a", "b"}, 0))
}

func TestGap(t *testing.T) {
	assert.Equal(t, []string{"  a", "  b"}, Gap([]string{"a", "b"}, "  ", false))
	assert.Equal(t, []string{"a  "}, Gap([]string{"a"}, "  ", true))
}

func TestBuilder_String(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		want    string
	}{
		{
			name:    "tab minimum",
			builder: &Builder{Columns: [][]string{{"ab", "c"}, {"x", "y"}}, Tab: 4},
			want:    "ab  x\nc   y\n",
		},
		{
			name:    "widest cell wins",
			builder: &Builder{Columns: [][]string{{"abcdef", "c"}, {"x"}}, Tab: 2},
			want:    "abcdefx\nc     \n",
		},
		{
			name:    "escape sequences are zero width",
			builder: &Builder{Columns: [][]string{{"\x1b[31mab\x1b[0m"}, {"x"}}, Tab: 3},
			want:    "\x1b[31mab\x1b[0m x\n",
		},
		{
			name:    "shorter first column",
			builder: &Builder{Columns: [][]string{{"a"}, {"x", "y"}}, Tab: 2},
			want:    "a x\n  y\n",
		},
		{
			name:    "last column not padded",
			builder: &Builder{Columns: [][]string{{"a"}, {"x", "longer"}}, Tab: 1},
			want:    "ax\n longer\n",
		},
		{
			name:    "no columns",
			builder: &Builder{Tab: 4},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.builder.String())
		})
	}
}

func TestBuilder_Swap(t *testing.T) {
	b := NewBuilder([]string{"art"}, []string{"text"})
	b.Tab = 5

	assert.Equal(t, "text art\n", b.Swap().String())
	assert.Equal(t, DefaultTab, NewBuilder().Tab)
}
