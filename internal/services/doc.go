// Package services defines shared utilities consumed by the catalog, draft,
// and persistence packages.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers and the active view
//     mode for logging.
//   - Structured error markers plus the Wrap helper so callers can tell user
//     errors (validation, not found) from transient storage failures.
//
// Use these helpers when wiring new components so error handling and
// observability stay uniform across the CLI.
package services
