// Package config loads, normalizes, and validates clausecheck configuration.
//
// Configuration is stored as TOML. Load searches ~/.config/clausecheck/config.toml
// followed by ./clausecheck.toml; when neither exists the built-in defaults are
// used. All path fields are tilde-expanded and made absolute during
// normalization so downstream packages never deal with relative paths.
package config
