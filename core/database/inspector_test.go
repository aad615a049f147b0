package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)

	// Minimal slice of the Wawi article table used by generated fixes.
	err = db.Exec("CREATE TABLE tArtikel (kArtikel INTEGER PRIMARY KEY, cJfsku TEXT, Condition TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "tArtikel")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["kartikel"])
	assert.Equal(t, "text", colMap["cjfsku"])

	// PRAGMA table_info yields no rows for an unknown table, not an error.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestHasColumns(t *testing.T) {
	cfg := Config{Driver: "sqlite", Name: ":memory:"}
	db, err := Connect(cfg)
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE tArtikel (kArtikel INTEGER PRIMARY KEY, cJfsku TEXT)").Error)

	ok, missing, err := HasColumns(db, "tArtikel", "kArtikel", "cJfsku")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, missing)

	ok, missing, err = HasColumns(db, "tArtikel", "cJfsku", "Condition")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"Condition"}, missing)
}
