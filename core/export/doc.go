// Package export persists the artifacts of one comparison run.
//
// Each run gets its own run_<timestamp> directory containing db.csv, api.csv,
// merged.csv, and export.xlsx (one sheet per table with an autofilter and a
// frozen header row). A failing Excel export is reported but never aborts the
// run; the CSV files are the canonical artifacts.
package export
