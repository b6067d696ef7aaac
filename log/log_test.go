package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	assert.Equal(t, LevelWarn, logger.Level())
	assert.Equal(t, FormatText, logger.Format())
	assert.False(t, logger.caller)
	assert.True(t, logger.pretty)
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"trace at trace", Logger.Trace, LevelTrace, true},
		{"trace at debug", Logger.Trace, LevelDebug, false},
		{"debug at debug", Logger.Debug, LevelDebug, true},
		{"debug at info", Logger.Debug, LevelInfo, false},
		{"info at info", Logger.Info, LevelInfo, true},
		{"info at warn", Logger.Info, LevelWarn, false},
		{"warn at warn", Logger.Warn, LevelWarn, true},
		{"warn at error", Logger.Warn, LevelError, false},
		{"error at debug", Logger.Error, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(Make(&buf, WithLevel(tt.minLevel)), "test message")

			assert.Equal(t, tt.logged, buf.Len() > 0)
		})
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo))
		logger.Info("test message", slog.String("key", "value"))

		var result map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "test message", result["msg"])
		assert.Equal(t, "value", result["key"])
		assert.Equal(t, "INFO", result["level"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithPretty(false), WithLevel(LevelInfo))
		logger.Info("test message", slog.String("key", "value"))

		assert.Contains(t, buf.String(), "test message")
		assert.Contains(t, buf.String(), "key=value")
	})
}

func TestLogger_Pretty_WritesSingleLine(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelTrace), WithTimeLayout("none"))

	logger.Trace("unresolved placeholder",
		slog.String("name", "DISTRO"),
		slog.Int("line", 3),
		slog.Bool("soft", true),
	)

	// A bytes.Buffer is not a terminal, so no color sequences are emitted.
	assert.Equal(t,
		"TRACE unresolved placeholder name=DISTRO line=3 soft=true\n",
		buf.String(),
	)
}

func TestLogger_Pretty_WithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none")).
		With(slog.String("component", "tmpl"))

	logger.Warn("diagnostic",
		slog.Group("token", slog.String("kind", "placeholder"), slog.Int("at", 7)),
	)

	assert.Equal(t,
		"WARN diagnostic component=tmpl token.kind=placeholder token.at=7\n",
		buf.String(),
	)
}

type valuer struct{}

func (valuer) LogValue() slog.Value {
	return slog.GroupValue(slog.String("error", "boom"), slog.Int("line", 2))
}

func TestLogger_Pretty_ResolvesLogValuer(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithTimeLayout("none")).Error("failed", slog.Any("err", valuer{}))

	assert.Equal(t, "ERROR failed err.error=boom err.line=2\n", buf.String())
}

func TestLogger_Pretty_Error(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithTimeLayout("none")).
		Error("failed", slog.Any("cause", errors.New("disk full")))

	assert.Equal(t, "ERROR failed cause=disk full\n", buf.String())
}

func TestLogger_Make_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithCaller(true), WithTimeLayout("none")).Warn("test message")

	assert.Contains(t, buf.String(), "log_test.go:")

	buf.Reset()
	Make(&buf, WithCaller(false), WithTimeLayout("none")).Warn("test message")

	assert.NotContains(t, buf.String(), "log_test.go:")
}

func TestLogger_Wrap_KeepsBase(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithFormat(FormatJSON))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	assert.Equal(t, FormatJSON, wrapped.Format())
	assert.Equal(t, LevelDebug, wrapped.Level())
	assert.Equal(t, LevelWarn, base.Level())
}

func TestLogger_ConcurrentCalls_ThreadSafe(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false), WithLevel(LevelInfo))

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("concurrent message", slog.Int("id", id))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 100)
}

func TestLogger_ZeroValue_Safety(t *testing.T) {
	var l Logger

	assert.NotPanics(t, func() {
		l.Debug("test")
		l.Info("test")
		l.Warn("test")
		l.Error("test")
	})

	assert.Nil(t, l.With(slog.String("key", "value")).Logger)
	assert.Equal(t, DefaultLevel, l.Level())
}

func TestLogger_TimeLayoutNone_OmitsTime(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none")).Warn("test")

	assert.NotContains(t, buf.String(), `"time"`)
}

func BenchmarkLogger_Warn(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf)

	for i := 0; b.Loop(); i++ {
		logger.Warn("benchmark message", slog.Int("iteration", i))
	}
}
