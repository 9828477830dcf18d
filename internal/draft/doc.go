// Package draft owns the editable source collection.
//
// A Workflow keeps the draft in memory and writes the whole collection back
// through its Persister after every mutation. When a write fails the
// mutation is undone, so the in-memory draft always matches what was last
// stored. Confirmation of destructive operations is the caller's job.
package draft
