package confstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accessorConfig = `
[ GENERAL ]
auto center = true
broken = yes
name = "lightfetch"
partly = "a"b"c"
bare
empty =

[ IMAGE ]
size = 15
negative = -3
huge = 4294967296
filter = Gaussian
bad filter = Bicubic
`

func TestDocument_GetStr(t *testing.T) {
	doc := mustParse(t, accessorConfig)

	tests := []struct {
		name    string
		section string
		key     string
		want    string
		err     *Error
	}{
		{"quoted", "GENERAL", "name", "lightfetch", nil},
		{"embedded quotes", "GENERAL", "partly", "abc", nil},
		{"empty", "GENERAL", "empty", "", nil},
		{"bare", "GENERAL", "bare", "", ErrKeyHasNoValue},
		{"missing key", "GENERAL", "nope", "", ErrKeyNotFound},
		{"missing section", "NOPE", "name", "", ErrSectionNotFound},
		{"case sensitive section", "general", "name", "", ErrSectionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.GetStr(tt.section, tt.key)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.True(t, IsClass(err, ClassLookup))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_GetBool(t *testing.T) {
	doc := mustParse(t, accessorConfig)

	v, err := doc.GetBool("GENERAL", "auto center")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = doc.GetBool("GENERAL", "broken")
	require.ErrorIs(t, err, ErrNotABoolean)
	assert.True(t, IsClass(err, ClassType))

	_, err = doc.GetBool("GENERAL", "bare")
	assert.ErrorIs(t, err, ErrKeyHasNoValue)
}

func TestDocument_GetInt(t *testing.T) {
	doc := mustParse(t, accessorConfig)

	v, err := doc.GetInt("IMAGE", "size")
	require.NoError(t, err)
	assert.Equal(t, uint32(15), v)

	for _, key := range []string{"negative", "huge", "filter"} {
		_, err = doc.GetInt("IMAGE", key)
		assert.ErrorIs(t, err, ErrNotAnInteger, key)
	}
}

func TestDocument_GetInt_Sign(t *testing.T) {
	doc := mustParse(t, "[ IMAGE ]\nplus = +5\ntwice = ++5\nbare = +\n")

	v, err := doc.GetInt("IMAGE", "plus")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)

	for _, key := range []string{"twice", "bare"} {
		_, err = doc.GetInt("IMAGE", key)
		assert.ErrorIs(t, err, ErrNotAnInteger, key)
	}
}

func TestDocument_GetFilter(t *testing.T) {
	doc := mustParse(t, accessorConfig)

	f, err := doc.GetFilter("IMAGE", "filter")
	require.NoError(t, err)
	assert.Equal(t, FilterGaussian, f)

	_, err = doc.GetFilter("IMAGE", "bad filter")
	require.ErrorIs(t, err, ErrUnknownFilterName)

	for _, name := range FilterNames() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestDocument_Suggestions(t *testing.T) {
	doc := mustParse(t, accessorConfig)

	_, err := doc.GetStr("GENERAL", "autocenter")

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "auto center", e.Hint())
	assert.Contains(t, err.Error(), `did you mean "auto center"?`)

	_, err = doc.GetStr("IMAG", "size")
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "IMAGE", e.Hint())

	_, err = doc.GetStr("GENERAL", "zzz")
	require.ErrorAs(t, err, &e)
	assert.Empty(t, e.Hint())
}

func TestDocument_SetStrRoundTrip(t *testing.T) {
	doc := mustParse(t, accessorConfig)

	before, err := doc.GetStr("GENERAL", "name")
	require.NoError(t, err)

	doc.SetStr("GENERAL", "name", before)

	after, err := doc.GetStr("GENERAL", "name")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDocument_Set(t *testing.T) {
	doc := NewDocument()

	prev, existed := doc.Set("NEW", "k", TextSlot("v"))
	assert.False(t, existed)
	assert.Equal(t, Slot{}, prev)

	prev, existed = doc.Set("NEW", "k", TextSlot("w"))
	assert.True(t, existed)
	assert.Equal(t, "v", prev.Text())

	doc.SetUnset("NEW", "flag")

	_, err := doc.GetStr("NEW", "flag")
	require.ErrorIs(t, err, ErrKeyHasNoValue)

	sec, ok := doc.Section("NEW")
	require.True(t, ok)
	assert.Equal(t, []string{"k", "flag"}, sec.Keys())
}

func TestDocument_Defaults(t *testing.T) {
	doc := mustParse(t, accessorConfig)

	s, err := doc.StrOr("GENERAL", "missing", "fallback")
	assert.Error(t, err)
	assert.Equal(t, "fallback", s)

	b, err := doc.BoolOr("GENERAL", "auto center", false)
	assert.NoError(t, err)
	assert.True(t, b)

	n, err := doc.IntOr("IMAGE", "negative", 7)
	assert.ErrorIs(t, err, ErrNotAnInteger)
	assert.Equal(t, uint32(7), n)
}

func TestParseFilter(t *testing.T) {
	for _, name := range FilterNames() {
		f, ok := ParseFilter(name)
		require.True(t, ok, name)
		assert.Equal(t, name, f.String())
	}

	_, ok := ParseFilter("nearest")
	assert.False(t, ok)
	assert.Equal(t, "Filter(9)", Filter(9).String())
}
