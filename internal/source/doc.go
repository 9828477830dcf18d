// Package source defines the catalog record, the filter state, and the static
// category and section taxonomy shared by the query engine and the CLI.
//
// Draft records are assembled through Builder, which validates every field at
// once and reports a ValidationError that unwraps to services.ErrValidation.
// Records that arrive through import are never validated here; they are kept
// as-is and simply render incompletely.
package source
