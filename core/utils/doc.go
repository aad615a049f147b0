// Package utils provides common utility functions for the dbapi-compare
// application. It covers type conversion between database driver values,
// JSON payload values, and the string/int shapes the comparison pipeline
// expects.
package utils
