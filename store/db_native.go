//go:build !cgo_sqlite

package store

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

func openDB(dsn string) (*sql.DB, error) {
	return sql.Open("sqlite", dsn)
}
