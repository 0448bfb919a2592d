// Package config loads and validates the pipeline's YAML configuration.
//
// Loading is split into three steps so tests can exercise them separately:
// Load (file + env expansion), applyDefaults, Validate. Binaries should use
// LoadAndValidate.
package config
