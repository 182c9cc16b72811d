// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// Sources are combined by a small builder (see config_builder.go) in
// priority order; the merged result is validated before use. All settings
// are grouped into nested sections (Identity, Storage, Server, Workers)
// on [StructuredConfig].
package config
