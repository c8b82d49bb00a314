// Package config loads, normalizes, and validates pdfsqueeze configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PDFSQUEEZE_GS. The Config type centralizes every knob the CLI needs, so
// engine discovery overrides and compression defaults are resolved in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical presets, and clear validation errors.
package config
