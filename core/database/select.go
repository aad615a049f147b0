package database

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"dbapi-compare/core/progress"
	"dbapi-compare/core/record"
	"dbapi-compare/core/utils"

	"gorm.io/gorm"
)

// Keywords that must not appear in a read-only statement.
var forbidden = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|MERGE|CREATE|ALTER|DROP|TRUNCATE|EXEC|EXECUTE|GRANT|REVOKE)\b`)

// Coarse SELECT detection, a WITH-CTE before the SELECT is allowed.
var selectAllow = regexp.MustCompile(`(?is)^\s*(WITH\b.*?\)\s*)?SELECT\b`)

// Statement splitting is not attempted; semicolon cascades are rejected outright.
var semicolonMulti = regexp.MustCompile(`;\s*\S`)

// ValidateSelect checks that sql is a single read-only SELECT statement.
// It returns the trimmed statement or an error describing the violation.
func ValidateSelect(sql string) (string, error) {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return "", fmt.Errorf("sql statement is empty")
	}
	if !selectAllow.MatchString(trimmed) {
		return "", fmt.Errorf("only SELECT statements are allowed")
	}
	if forbidden.MatchString(trimmed) {
		return "", fmt.Errorf("statement contains a forbidden keyword, only plain SELECTs are allowed")
	}
	if semicolonMulti.MatchString(trimmed) {
		return "", fmt.Errorf("multiple statements are not allowed")
	}
	return trimmed, nil
}

// ReadSelect executes the SELECT statement and returns the result as a table.
// maxRows caps the number of rows read (0 means unlimited). Values are
// normalized via utils.Normalize so the rest of the pipeline never sees
// driver-specific types. Status lines go to q.
func ReadSelect(ctx context.Context, db *gorm.DB, sql string, maxRows int, q progress.Reporter) (*record.Table, error) {
	stmt, err := ValidateSelect(sql)
	if err != nil {
		return nil, err
	}

	progress.Put(q, "DB: connecting ...")
	rows, err := db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, fmt.Errorf("db query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("db columns unavailable: %w", err)
	}

	progress.Put(q, "DB: reading rows ...")
	table := record.NewTable(columns...)
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if maxRows > 0 && table.Len() >= maxRows {
			progress.Put(q, fmt.Sprintf("DB: row cap of %d reached, stopping read.", maxRows))
			break
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("db row scan failed: %w", err)
		}
		row := make(record.Row, len(columns))
		for i, col := range columns {
			row[col] = utils.Normalize(values[i])
		}
		table.Append(row)

		if table.Len()%10000 == 0 {
			progress.Put(q, fmt.Sprintf("DB: %d rows read ...", table.Len()))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db read failed: %w", err)
	}

	progress.Put(q, fmt.Sprintf("DB: %d rows read.", table.Len()))
	return table, nil
}
