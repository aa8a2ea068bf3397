// Package migrations embeds the SQL migrations applied to the durable store
// when it is opened.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
