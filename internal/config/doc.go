// Package config loads, normalizes, and validates modcheck configuration.
//
// The configuration file is optional: Load falls back to built-in
// defaults when neither ~/.config/modcheck/config.toml nor a local
// modcheck.toml exists, so a plain `modcheck` run needs no setup. The
// file's main purpose is extending the classification data (core-library
// exemptions, dependency pairs) and redirecting backup/log directories.
//
// Always obtain settings through this package so downstream code sees
// expanded paths and canonical values.
package config
