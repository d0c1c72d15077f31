// Package migrations embeds the goose SQL migrations. The SQL is kept
// portable between postgres and sqlite.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
