//go:build !pprof

package profile

import "iter"

// Enabled reports whether profiling was compiled in.
const Enabled = false

// Modes yields nothing when built without tag pprof.
func Modes() iter.Seq[string] {
	return func(func(string) bool) {}
}

func start(Profiler) interface{ Stop() } { return ignore{} }
