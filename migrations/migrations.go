// Package migrations содержит встроенные SQL-миграции схемы БД,
// применяемые при старте через golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
