// Package api implements the fulfillment API client used as the API-side
// record source of a comparison run.
//
// The client speaks the merchant/fulfiller REST surface: standard resource
// listings paginate via "items" and "_links.next", the updates endpoint
// paginates via "data" and "nextChunkUrl" within a fromDate/toDate window.
// Nested JSON payloads are flattened to dot-notation columns so they join
// cleanly against flat database rows.
//
// Requests carry the fixed application header set plus the configured
// Authorization and Alias values. URLs written to the progress log are passed
// through the redact package first.
package api
