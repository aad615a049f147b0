// Package database handles the Wawi database connection, read-only query
// execution, and schema inspection.
//
// It wraps GORM to configure MySQL connections (sqlite is supported for
// tests and offline runs) and exposes ReadSelect, which executes exactly the
// SELECT statement a comparison profile carries. Statements are validated to
// be read-only before execution; the tool never mutates the database itself,
// remediation happens through generated fix scripts.
//
// # Schema Inspection
//
// GetTableColumns retrieves column definitions and backs the preflight that
// verifies the patch target of generated Wawi fixes actually exists.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	table, err := database.ReadSelect(ctx, db, sql, maxRows, q)
package database
