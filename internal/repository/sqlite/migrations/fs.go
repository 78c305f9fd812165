// Package migrations embeds and applies the SQL migrations for the SQLite
// backend.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
