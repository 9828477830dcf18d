// Package query computes the filtered, ranked view of a source collection.
//
// ComputeView is pure: it never errors and never mutates its input. Filter
// clauses combine with AND; an empty clause passes everything. Sorting is
// always stable, which makes relevance ties deterministic.
package query
