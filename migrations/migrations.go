// Package migrations embeds the SQL schema migrations so the server binary
// can apply them at startup.
package migrations

import "embed"

// FS holds every *.sql migration in golang-migrate naming.
//
//go:embed *.sql
var FS embed.FS
