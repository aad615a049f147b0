// Package record defines the tabular data shape shared by the database reader,
// the API client, the join step, and the validation runner.
//
// A Table keeps an explicit column order next to its rows so that CSV and
// Excel exports stay deterministic even though each Row is a plain map.
//
// # Usage
//
//	t := record.NewTable("id", "name")
//	t.Append(record.Row{"id": 1, "name": "chair"})
package record
