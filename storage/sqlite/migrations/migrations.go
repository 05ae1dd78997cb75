// Package migrations embeds the SQLite schema for the cache store.
package migrations

import "embed"

// FS holds the ordered .sql files.
//
//go:embed *.sql
var FS embed.FS
