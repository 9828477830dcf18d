// Package official loads the published source collection.
//
// The collection comes from an http(s) URL, a local file, or the copy
// compiled into the binary. Remote and file failures never surface to the
// caller: the loader logs a warning and falls back to the bundled copy.
package official
