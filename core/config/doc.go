// Package config provides configuration management for dbapi-compare.
//
// Two layers exist:
//
//   - Environment configuration (LoadConfig): logging, database connection,
//     export directories, and the HTTP facade. Defaults come from struct
//     tags and are overridable via environment variables or a .env file,
//     e.g. DATABASE_HOST, LOG_LEVEL, EXPORT_FIX_DIR.
//
//   - Comparison profiles (LoadProfiles): named profiles read from
//     profiles.yaml (or .json), each bundling the SELECT statement, the API
//     endpoint settings, and the join specification for one comparison.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	profiles, err := config.LoadProfiles(".")
//	p, err := profiles.Get("default")
package config
