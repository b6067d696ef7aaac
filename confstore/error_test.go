package confstore

import (
	"errors"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_Class(t *testing.T) {
	tests := []struct {
		kind  Kind
		class Class
	}{
		{KindRead, ClassIO},
		{KindWrite, ClassIO},
		{KindMissingClosingBracket, ClassSyntax},
		{KindMissingKeyForContinuation, ClassSyntax},
		{KindEmptyKey, ClassSyntax},
		{KindSectionNotFound, ClassLookup},
		{KindKeyNotFound, ClassLookup},
		{KindKeyHasNoValue, ClassLookup},
		{KindNotABoolean, ClassType},
		{KindNotAnInteger, ClassType},
		{KindUnknownFilterName, ClassType},
		{kindCount + 1, ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.class, tt.kind.Class())
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"bare", ErrEmptyKey, "empty key"},
		{"line", ErrEmptyKey.At(3), "empty key on line 3"},
		{"path and line", ErrEmptyKey.In("a.ini").At(3), `empty key in "a.ini" on line 3`},
		{
			"detail and hint",
			ErrKeyNotFound.Detail("GENERAL.gapp").Suggest("gapp", []string{"gap"}),
			`key not found: GENERAL.gapp (did you mean "gap"?)`,
		},
		{
			"cause",
			ErrReadConfig.Detail("x.ini").Wrap(fs.ErrPermission),
			"read configuration file: x.ini: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := ErrKeyNotFound.Detail("a.b").At(2).With(slog.String("k", "v"))

	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NotErrorIs(t, err, ErrSectionNotFound)

	wrapped := ErrWriteConfig.Wrap(fs.ErrPermission)
	assert.ErrorIs(t, wrapped, ErrWriteConfig)
	assert.ErrorIs(t, wrapped, fs.ErrPermission)
	assert.NotErrorIs(t, wrapped, ErrFileExists)

	exists := ErrFileExists.With(slog.String("path", "p"))
	assert.ErrorIs(t, exists, ErrFileExists)
	assert.ErrorIs(t, exists, ErrWriteConfig)
}

func TestError_BuildersDoNotMutate(t *testing.T) {
	_ = ErrEmptyKey.At(9).Detail("x").With(slog.Int("n", 1))

	assert.Zero(t, ErrEmptyKey.Line())
	assert.Equal(t, "empty key", ErrEmptyKey.Error())
	assert.Empty(t, ErrEmptyKey.attrs)
}

func TestError_LogValue(t *testing.T) {
	err := ErrMissingClosingBracket.At(4).With(slog.String("text", "[ A"))

	attrs := map[string]slog.Value{}
	for _, a := range err.LogValue().Group() {
		attrs[a.Key] = a.Value
	}

	assert.Equal(t, "missing closing bracket", attrs["error"].String())
	assert.Equal(t, "syntax", attrs["class"].String())
	assert.Equal(t, int64(4), attrs["line"].Int64())
	assert.Equal(t, "[ A", attrs["text"].String())
}

func TestIsClass(t *testing.T) {
	assert.True(t, IsClass(ErrReadConfig, ClassIO))
	assert.False(t, IsClass(ErrReadConfig, ClassSyntax))
	assert.False(t, IsClass(errors.New("plain"), ClassIO))
	assert.False(t, IsClass(nil, ClassIO))
}
