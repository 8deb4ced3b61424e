// Package config loads, normalizes, and validates recordgroup configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// RECORDGROUP_LOG_LEVEL and RECORDGROUP_TRACE. Always obtain settings through
// this package so downstream code receives canonical log levels and formats.
package config
