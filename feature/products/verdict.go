package products

import "fmt"

// Condition values with a known automated remediation path.
const (
	conditionDefault = "Default"
	conditionUnknown = "Unknown"
)

// Evaluate compares one joined record and returns exactly one verdict.
// It is pure: no I/O, no shared state, and it never fails for well-formed
// input, so concurrent use across records is safe.
func Evaluate(rec JoinedRecord) VerdictResult {
	// No external registration means there is nothing to compare against.
	if rec.API.Jfsku == nil || *rec.API.Jfsku == "" {
		return VerdictResult{
			OK:      false,
			Message: "NoJFSKU",
		}
	}
	jfsku := *rec.API.Jfsku

	if rec.DB.Condition != rec.API.Condition {
		res := VerdictResult{
			OK:      false,
			Message: fmt.Sprintf("%s!==%s", rec.DB.Condition, rec.API.Condition),
		}
		// Only the known Default/Unknown divergence has an automated
		// remediation; every other combination is report-only.
		if rec.DB.Condition == conditionDefault && rec.API.Condition == conditionUnknown {
			res.APIFix = apiFixScript(jfsku)
		}
		return res
	}

	return VerdictResult{
		OK:      true,
		Message: fmt.Sprintf("JFSKU: %s ok", jfsku),
		WawiFix: wawiFixStatement(jfsku, rec.DB.ArticleKey),
	}
}

// apiFixScript renders the PATCH command template that resets the
// merchant-product condition to Default. The script is collected into a .js
// fix file and executed by external tooling, never by this program.
func apiFixScript(jfsku string) string {
	return fmt.Sprintf(
		`fetch('/api/v1/merchant/merchant-products/%s', { method: 'PATCH', headers: { 'Content-Type': 'application/json' }, body: '{ "condition" : "Default" }' });`,
		jfsku,
	)
}

// wawiFixStatement renders the UPDATE that re-pins the JFSKU reference on
// the article row, converging replicas that still miss it.
func wawiFixStatement(jfsku string, articleKey int) string {
	return fmt.Sprintf("UPDATE %s SET %s = '%s' WHERE %s=%d",
		WawiTable, WawiJfskuColumn, jfsku, WawiKeyColumn, articleKey)
}
