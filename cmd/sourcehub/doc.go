// Package main hosts the SourceHub CLI entrypoint and command graph.
//
// The Cobra command tree browses the official source collection, edits the
// local draft, and moves data between the two. Configuration resolution,
// logging setup, and store wiring live in context.go so subcommands only deal
// with flags and output. Domain behavior belongs in the internal packages;
// commands here should stay thin.
package main
