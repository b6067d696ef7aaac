//go:build !pprof

package profile

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabled(t *testing.T) {
	assert.False(t, Enabled)
	assert.Empty(t, slices.Collect(Modes()))

	for _, p := range []Profiler{{}, {Mode: "cpu", Path: t.TempDir()}} {
		assert.NotPanics(t, func() { p.Start().Stop() })
	}
}
