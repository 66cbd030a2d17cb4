// Package config loads, normalizes, and validates sieve configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the SIEVE_SOURCE environment fallback. The
// similarity threshold and release marker list are deliberately absent: they
// are fixed at build time.
//
// Always obtain settings through this package so the CLI receives sanitized
// paths, canonical report and log formats, and clear validation errors.
package config
