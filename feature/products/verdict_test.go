package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestEvaluateMatch(t *testing.T) {
	res := Evaluate(JoinedRecord{
		DB:  DBView{Jfsku: "X1", Condition: "New", ArticleKey: 42},
		API: APIView{Jfsku: strPtr("X1"), Condition: "New"},
	})

	assert.True(t, res.OK)
	assert.Equal(t, "JFSKU: X1 ok", res.Message)
	assert.Equal(t, "UPDATE tArtikel SET cJfsku = 'X1' WHERE kArtikel=42", res.WawiFix)
	assert.Empty(t, res.APIFix)
}

func TestEvaluateMissingJfsku(t *testing.T) {
	tests := []struct {
		name string
		api  APIView
	}{
		{"nil jfsku", APIView{Jfsku: nil, Condition: "New"}},
		{"empty jfsku", APIView{Jfsku: strPtr(""), Condition: "New"}},
		{"nil jfsku with differing conditions", APIView{Jfsku: nil, Condition: "Unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(JoinedRecord{
				DB:  DBView{Jfsku: "X1", Condition: "Default", ArticleKey: 1},
				API: tt.api,
			})
			assert.False(t, res.OK)
			assert.Equal(t, "NoJFSKU", res.Message)
			assert.Empty(t, res.APIFix)
			assert.Empty(t, res.WawiFix)
		})
	}
}

func TestEvaluateConditionMismatchWithRemediation(t *testing.T) {
	res := Evaluate(JoinedRecord{
		DB:  DBView{Jfsku: "X2", Condition: "Default", ArticleKey: 7},
		API: APIView{Jfsku: strPtr("X2"), Condition: "Unknown"},
	})

	assert.False(t, res.OK)
	assert.Equal(t, "Default!==Unknown", res.Message)
	assert.Contains(t, res.APIFix, "X2")
	assert.Contains(t, res.APIFix, "merchant-products")
	assert.Contains(t, res.APIFix, `'{ "condition" : "Default" }'`)
	// the mismatch branch never produces a Wawi fix
	assert.Empty(t, res.WawiFix)
}

func TestEvaluateConditionMismatchWithoutRemediation(t *testing.T) {
	tests := []struct {
		name    string
		db, api string
	}{
		{"new vs used", "New", "Used"},
		{"reversed remediation pair", "Unknown", "Default"},
		{"default vs new", "Default", "New"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(JoinedRecord{
				DB:  DBView{Jfsku: "X3", Condition: tt.db, ArticleKey: 9},
				API: APIView{Jfsku: strPtr("X3"), Condition: tt.api},
			})
			assert.False(t, res.OK)
			assert.Equal(t, tt.db+"!=="+tt.api, res.Message)
			assert.Empty(t, res.APIFix)
			assert.Empty(t, res.WawiFix)
		})
	}
}

func TestEvaluateOkCarriesNoAPIFix(t *testing.T) {
	res := Evaluate(JoinedRecord{
		DB:  DBView{Jfsku: "X9", Condition: "Default", ArticleKey: 3},
		API: APIView{Jfsku: strPtr("X9"), Condition: "Default"},
	})
	assert.True(t, res.OK)
	assert.Empty(t, res.APIFix)
	assert.NotEmpty(t, res.WawiFix)
}
