// Package config handles configuration management for sublsync.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/sublsync/config.toml or --config
//  3. <source>/.sublsync.toml, when a source directory is known
//  4. SUBLSYNC_* environment variables
//
// Command line flags are applied on top by the caller.
package config
