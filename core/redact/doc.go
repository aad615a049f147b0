// Package redact masks credentials and tokens in free-form text before it
// reaches logs or error messages.
//
// Use Redact for arbitrary strings (error texts, URLs) and RedactHeaders for
// HTTP header maps. Output is capped in length to keep log lines bounded.
package redact
