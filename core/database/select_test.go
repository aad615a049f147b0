package database

import (
	"context"
	"testing"

	"dbapi-compare/core/progress"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestValidateSelect(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantErr bool
	}{
		{"plain select", "SELECT kArtikel, cJfsku FROM tArtikel", false},
		{"lowercase select", "select * from tArtikel", false},
		{"cte select", "WITH a AS (SELECT 1 AS x) SELECT * FROM a", false},
		{"leading whitespace", "  \n SELECT 1", false},
		{"empty", "   ", true},
		{"update", "UPDATE tArtikel SET cJfsku = ''", true},
		{"insert", "INSERT INTO tArtikel VALUES (1)", true},
		{"drop hidden in select", "SELECT 1; DROP TABLE tArtikel", true},
		{"exec", "EXEC sp_who", true},
		{"multi statement", "SELECT 1; SELECT 2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSelect(tt.sql)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestReadSelect(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"kArtikel", "cJfsku", "Condition"}).
		AddRow(42, []byte("X1"), "New").
		AddRow(43, nil, "Default")
	mock.ExpectQuery("SELECT kArtikel, cJfsku, Condition FROM tArtikel").WillReturnRows(rows)

	col := &progress.Collector{}
	table, err := ReadSelect(context.Background(), db, "SELECT kArtikel, cJfsku, Condition FROM tArtikel", 0, col)
	require.NoError(t, err)

	assert.Equal(t, []string{"kArtikel", "cJfsku", "Condition"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "X1", table.Rows[0]["cJfsku"])
	assert.Nil(t, table.Rows[1]["cJfsku"])

	lines := col.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "DB: 2 rows read.", lines[len(lines)-1])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadSelectRowCap(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"kArtikel"})
	for i := 1; i <= 5; i++ {
		rows.AddRow(i)
	}
	mock.ExpectQuery("SELECT kArtikel FROM tArtikel").WillReturnRows(rows)

	table, err := ReadSelect(context.Background(), db, "SELECT kArtikel FROM tArtikel", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}

func TestReadSelectRejectsMutation(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := ReadSelect(context.Background(), db, "DELETE FROM tArtikel", 0, nil)
	assert.Error(t, err)
}
