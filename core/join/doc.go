// Package join aligns the database-side and API-side tables on a shared
// business key and produces the merged table the validation runner consumes.
//
// Key values are stringified and trimmed before matching so that padded CHAR
// columns and numeric identifiers join cleanly. All columns of both sources
// are carried into the merged table under configurable prefixes (db_ / api_
// by default); inner, left, right, and outer joins are supported.
package join
