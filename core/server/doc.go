// Package server holds the HTTP facade configuration.
//
// The main application entry point handles server startup; this package only
// defines the configuration structure (listen port, API key) embedded by the
// core/config package.
package server
