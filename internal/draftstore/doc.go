// Package draftstore persists the draft collection.
//
// The draft lives under a single versioned key in a small key-value store.
// SQLiteKV backs the CLI (one SQLite file under the data directory, writes
// serialized across processes by an advisory file lock); MemoryKV backs
// tests. Adapter turns the stored text into a collection and back, treating
// anything unreadable as an empty draft. The file helpers in file.go handle
// the sources.json export and import artifacts.
package draftstore
