// Package catalog ties the official and draft collections to one browsing
// session: which collection is active, the filters and sort applied to it,
// and the operations that move data between the two.
package catalog
