// Package timerange builds the UTC ISO-8601 time window used by the
// fulfillment API updates endpoint.
//
// Dates and wall-clock times are interpreted in a named IANA timezone
// (default Europe/Berlin) and converted to UTC timestamps with a trailing Z.
package timerange
