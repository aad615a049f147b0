// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both the CLI batch runs and the
// HTTP facade. Progress messages from a comparison run are drained into this
// logger so per-record status lines and application logs share one stream.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches
// it to the log entry so all logs of one HTTP-triggered run can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
package logger
