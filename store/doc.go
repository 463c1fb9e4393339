// Package store persists node-local snippet templates in SQLite.
//
// Each node holds at most one JSON array of template definitions, keyed by
// node id. Stored data that fails to decode is reported as no templates and
// logged, never returned as an error, so that a single corrupt row cannot
// break rendering.
//
// The default driver is modernc.org/sqlite (pure Go). Build with the
// cgo_sqlite tag to use github.com/mattn/go-sqlite3 instead.
package store
