// Package cmd implements the lightfetch subcommands.
//
// Every command reads its filesystem, output and configuration path from
// the [Env] stored in its context with [WithEnv]. The configuration file is
// created with the defaults on first use.
//
//   - [Fetch] (default): print the rendered fetch text beside the art
//   - [Init]: write the default configuration file
//   - [Dump]: print the parsed configuration as YAML, JSON or INI
//   - [Get]: print one typed configuration value
//   - [Symbols]: print the template symbols of this system
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default configuration file.
	ConfigIdentifier = "config"
)
