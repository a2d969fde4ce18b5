// Package siteguard exposes build-time assets shared by the commands,
// currently the SQL migrations applied by the migrate subcommand.
package siteguard

import "embed"

// Migrations holds the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
