// Package profile provides optional runtime profiling for lightfetch.
//
// Profiling is backed by [github.com/pkg/profile] and is compiled in only
// when building with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// # Command-Line Usage
//
//	lightfetch --pprof-mode cpu
//	lightfetch --pprof-mode heap --pprof-dir ./profiles
//
// The default output directory is the pprof subdirectory of the lightfetch
// cache directory. Profiles are written with names matching the mode, for
// example cpu.pprof, and are read with go tool pprof:
//
//	go tool pprof -http=: ~/.cache/lightfetch/pprof/cpu.pprof
//
// Fetching is short-lived, so the cpu and clock modes only show useful data
// when the fetch is slow (large images, cold package databases).
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
