// Package migrations — SQL-миграции схемы, встроенные в бинарь.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
