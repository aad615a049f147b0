package products

// Wawi schema names used by generated fix statements and the preflight.
const (
	WawiTable        = "tArtikel"
	WawiJfskuColumn  = "cJfsku"
	WawiKeyColumn    = "kArtikel"
	ConditionColumn  = "Condition"
	APIJfskuField    = "jfsku"
	APIConditionsKey = "condition"
)

// DBView is the database-side view of one article.
type DBView struct {
	// Jfsku is the external-identifier reference column; empty when the
	// article row never stored one.
	Jfsku string
	// Condition is the article condition value.
	Condition string
	// ArticleKey is the tArtikel primary key.
	ArticleKey int
}

// APIView is the API-side view of the same article. A nil Jfsku means the
// article was never registered with the fulfillment network.
type APIView struct {
	Jfsku     *string
	Condition string
}

// JoinedRecord pairs both views of one logical article. It is produced by
// the join step and consumed exactly once by Evaluate.
type JoinedRecord struct {
	DB  DBView
	API APIView
}

// VerdictResult is the outcome of comparing one joined record.
// OK=true never carries fix scripts; fix fields are set only for the
// mismatch classes that permit generating them.
type VerdictResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	// APIFix is an HTTP PATCH command template for the fulfillment API.
	APIFix string `json:"api_fix,omitempty"`
	// WawiFix is an UPDATE statement for the Wawi database.
	WawiFix string `json:"wawi_fix,omitempty"`
}
