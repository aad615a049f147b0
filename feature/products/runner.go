package products

import (
	"fmt"
	"strings"

	"dbapi-compare/core/join"
	"dbapi-compare/core/progress"
	"dbapi-compare/core/record"
)

// Validation result columns appended to the merged table.
const (
	ColumnValidationOK  = "validation_ok"
	ColumnValidationMsg = "validation_msg"
)

// Scripts holds the accumulated remediation scripts of one batch pass,
// one per target system.
type Scripts struct {
	Wawi string
	API  string
}

// RunStats summarizes one batch pass.
type RunStats struct {
	Total        int `json:"total"`
	OK           int `json:"ok"`
	Mismatched   int `json:"mismatched"`
	Unregistered int `json:"unregistered"`
}

// Runner drives the sequential validation pass over a merged table.
type Runner struct {
	fields FieldMap
}

// NewRunner creates a runner for tables merged with the given join spec.
func NewRunner(spec join.Spec) *Runner {
	return &Runner{fields: NewFieldMap(spec)}
}

// Validate evaluates every merged row in order and returns an annotated copy
// of the table plus the accumulated fix scripts and counts. The input table
// is not modified. Each record's verdict message is published to q in
// processing order.
func (r *Runner) Validate(merged *record.Table, q progress.Reporter) (*record.Table, Scripts, RunStats) {
	out := record.NewTable(merged.Columns...)
	out.AddColumn(ColumnValidationOK)
	out.AddColumn(ColumnValidationMsg)

	var scripts Scripts
	var stats RunStats

	if merged.Empty() {
		progress.Put(q, "No data to validate.")
		return out, scripts, stats
	}

	progress.Put(q, fmt.Sprintf("Starting validation, %d rows ...", merged.Len()))

	for i, row := range merged.Rows {
		if i > 0 && i%1000 == 0 {
			progress.Put(q, fmt.Sprintf("validated: %d rows ...", i))
		}

		res := Evaluate(r.fields.Record(row))

		annotated := make(record.Row, len(row)+2)
		for k, v := range row {
			annotated[k] = v
		}
		annotated[ColumnValidationOK] = res.OK
		annotated[ColumnValidationMsg] = res.Message
		out.Append(annotated)

		stats.Total++
		switch {
		case res.OK:
			stats.OK++
		case res.Message == "NoJFSKU":
			stats.Unregistered++
		default:
			stats.Mismatched++
		}

		if res.WawiFix != "" {
			scripts.Wawi += withNewline(res.WawiFix)
		}
		if res.APIFix != "" {
			scripts.API += withNewline(res.APIFix)
		}

		progress.Put(q, res.Message)
	}

	progress.Put(q, fmt.Sprintf("Validation done: %d ok, %d mismatched, %d without JFSKU.",
		stats.OK, stats.Mismatched, stats.Unregistered))

	return out, scripts, stats
}

// PersistFixes hands each non-empty script to the sink, or announces an
// unsaved fix when no sink is configured. Persistence failures are reported
// on the progress queue and never abort the batch. The returned map holds
// the written paths keyed by fix kind.
func PersistFixes(scripts Scripts, sink Sink, q progress.Reporter) map[string]string {
	paths := make(map[string]string)

	for _, fix := range []struct {
		kind    string
		label   string
		content string
	}{
		{"wawi", "Wawi", scripts.Wawi},
		{"api", "API", scripts.API},
	} {
		if strings.TrimSpace(fix.content) == "" {
			continue
		}
		if sink == nil {
			progress.Put(q, fix.label+" fix available (no fix directory configured) - not saved.")
			continue
		}
		path, err := sink.Persist(fix.kind, fix.content)
		if err != nil {
			progress.Put(q, fix.label+" fix could not be saved: "+err.Error())
			continue
		}
		paths[fix.kind] = path
		progress.Put(q, fix.label+" fix saved: "+path)
	}

	return paths
}

func withNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
