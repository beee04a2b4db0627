// Package migrations embeds the SQL migration files so the goose
// programmatic API can apply them at server startup and in test setup.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// The server and the tests both migrate from this FS, so the schema the
// binary expects always ships inside the binary.
//
//go:embed *.sql
var FS embed.FS
