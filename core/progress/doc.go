// Package progress provides the status channel between the comparison
// pipeline and the log output.
//
// The database reader, API client, and validation runner publish one-line
// status messages while they work; a single drain forwards them to the
// application logger. With a single producer per run, message order matches
// processing order without further synchronization.
package progress
