package products

import (
	"testing"

	"dbapi-compare/core/join"
	"dbapi-compare/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldMap(t *testing.T) {
	m := NewFieldMap(join.Spec{DBPrefix: "db_", APIPrefix: "api_"})
	assert.Equal(t, "db_cJfsku", m.DBJfsku)
	assert.Equal(t, "db_Condition", m.DBCondition)
	assert.Equal(t, "db_kArtikel", m.DBKey)
	assert.Equal(t, "api_jfsku", m.APIJfsku)
	assert.Equal(t, "api_condition", m.APICondition)

	// empty prefixes fall back to the defaults
	m = NewFieldMap(join.Spec{})
	assert.Equal(t, "db_cJfsku", m.DBJfsku)
}

func TestFieldMapRecord(t *testing.T) {
	m := NewFieldMap(join.Spec{DBPrefix: "db_", APIPrefix: "api_"})

	rec := m.Record(record.Row{
		"db_cJfsku":     "X1",
		"db_Condition":  "New",
		"db_kArtikel":   int64(42),
		"api_jfsku":     "X1",
		"api_condition": "New",
	})
	assert.Equal(t, "X1", rec.DB.Jfsku)
	assert.Equal(t, 42, rec.DB.ArticleKey)
	require.NotNil(t, rec.API.Jfsku)
	assert.Equal(t, "X1", *rec.API.Jfsku)
	assert.Equal(t, "New", rec.API.Condition)
}

func TestFieldMapRecordMissingAPISide(t *testing.T) {
	m := NewFieldMap(join.Spec{DBPrefix: "db_", APIPrefix: "api_"})

	// left join miss: api columns absent entirely
	rec := m.Record(record.Row{
		"db_cJfsku":    "X1",
		"db_Condition": "New",
		"db_kArtikel":  42,
	})
	assert.Nil(t, rec.API.Jfsku)

	// explicit null from the API payload
	rec = m.Record(record.Row{
		"db_kArtikel":   42,
		"api_jfsku":     nil,
		"api_condition": "New",
	})
	assert.Nil(t, rec.API.Jfsku)
}
