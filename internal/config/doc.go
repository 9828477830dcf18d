// Package config loads, normalizes, and validates SourceHub configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SOURCEHUB_OFFICIAL_URL
// environment fallback. The Config type centralizes the data directory, the
// official dataset location, draft store naming, and logging knobs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
