// Package products implements the merchant-product comparison between the
// Wawi database and the fulfillment API.
//
// The decision core is Evaluate: a pure function that takes one joined
// record (the database view and the API view of the same article) and
// returns a verdict with an optional remediation script per side. Around it
// sit the Runner, which drives the per-row batch pass and accumulates fix
// scripts, the fix sinks, which persist accumulated scripts as timestamped
// .js files, and the Service, which wires database read, API fetch, join,
// validation, and export into one run.
//
// # Verdict rules
//
// A record without an API-side JFSKU was never registered with the
// fulfillment network and is reported as such; nothing else is compared.
// Differing condition values are reported as "<db>!==<api>"; only the known
// Default/Unknown divergence yields an API-side PATCH script. Matching
// records confirm the JFSKU and yield a Wawi UPDATE that re-pins the
// reference column, keeping lagging replicas convergent.
package products
