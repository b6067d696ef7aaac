package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	original := SetDefault(
		Make(&buf, WithLevel(LevelDebug), WithTimeLayout("none"), WithPretty(false)),
	)
	defer SetDefault(original)

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"WarnContext", func(msg string, attrs ...slog.Attr) {
			WarnContext(context.Background(), msg, attrs...)
		}, "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("package message", slog.String("key", "value"))

			assert.Contains(t, buf.String(), "package message")
			assert.Contains(t, buf.String(), "level="+tt.level)
			assert.Contains(t, buf.String(), "key=value")
		})
	}
}

func TestPackage_Config_WrapsDefault(t *testing.T) {
	var buf bytes.Buffer

	original := SetDefault(Make(&buf, WithTimeLayout("none")))
	defer SetDefault(original)

	Info("hidden")
	assert.Empty(t, buf.String())

	Config(WithLevel(LevelInfo))
	Info("visible")

	assert.Equal(t, "INFO visible\n", buf.String())
	assert.Equal(t, LevelInfo, Default().Level())
}

func TestPackage_Caller_PointsAtCallSite(t *testing.T) {
	var buf bytes.Buffer

	original := SetDefault(Make(&buf, WithCaller(true), WithTimeLayout("none")))
	defer SetDefault(original)

	Warn("where")

	assert.Contains(t, buf.String(), "pkg_test.go:")
}
