// Package sysinfo collects the system data shown by lightfetch.
//
// A [Collector] runs its probes concurrently. Host, processor, memory, load
// and process data come from gopsutil; os-release(5) and the package
// databases are read through an afero filesystem. [Info.Symbols] turns the
// result into the template symbol table, formatted by a [Format].
package sysinfo
