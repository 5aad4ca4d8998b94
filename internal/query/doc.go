// Package query derives filtered and sorted views of an in-memory dataset.
//
// A Schema describes the named fields of a record type. Criteria combine a
// free-text search, per-field filters and an optional sort key. Compose applies
// every active predicate conjunctively and then sorts stably, returning a fresh
// slice so the source dataset is never reordered.
//
// Compose is pure: it is meant to be re-run whenever any criterion changes.
// Criteria that name a field the schema does not know are ignored rather than
// rejected.
package query
