package join

import (
	"fmt"
	"strings"

	"dbapi-compare/core/record"
	"dbapi-compare/core/utils"
)

// Spec configures one join between the database and API tables.
type Spec struct {
	// DBKey is the join column in the database table.
	DBKey string `mapstructure:"db_key" default:"cJfsku"`
	// APIKey is the join column in the API table.
	APIKey string `mapstructure:"api_key" default:"jfsku"`
	// How selects the join type (inner, left, right, outer).
	How string `mapstructure:"how" default:"inner"`
	// DBPrefix prefixes every database column in the merged table.
	DBPrefix string `mapstructure:"db_prefix" default:"db_"`
	// APIPrefix prefixes every API column in the merged table.
	APIPrefix string `mapstructure:"api_prefix" default:"api_"`
}

// Normalize fills empty spec fields with their defaults and validates How.
func (s Spec) Normalize() (Spec, error) {
	if s.DBPrefix == "" {
		s.DBPrefix = "db_"
	}
	if s.APIPrefix == "" {
		s.APIPrefix = "api_"
	}
	if s.How == "" {
		s.How = "inner"
	}
	s.How = strings.ToLower(s.How)
	switch s.How {
	case "inner", "left", "right", "outer":
	default:
		return s, fmt.Errorf("unsupported join type %q", s.How)
	}
	if s.DBKey == "" {
		s.DBKey = "cJfsku"
	}
	if s.APIKey == "" {
		s.APIKey = "jfsku"
	}
	return s, nil
}

// Join merges the two tables on the spec's keys. Row order is deterministic:
// database rows in input order, then (for right/outer joins) unmatched API
// rows in input order. A row whose key is empty never matches.
func Join(dbTable, apiTable *record.Table, spec Spec) (*record.Table, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return nil, err
	}
	if !dbTable.HasColumn(spec.DBKey) {
		return nil, fmt.Errorf("DB key %q not found", spec.DBKey)
	}
	if !apiTable.HasColumn(spec.APIKey) {
		return nil, fmt.Errorf("API key %q not found", spec.APIKey)
	}

	merged := record.NewTable()
	for _, c := range dbTable.Columns {
		merged.AddColumn(spec.DBPrefix + c)
	}
	for _, c := range apiTable.Columns {
		merged.AddColumn(spec.APIPrefix + c)
	}

	// Index API rows by normalized key; duplicate keys keep all rows.
	apiIndex := make(map[string][]int)
	for i, row := range apiTable.Rows {
		key := normalizeKey(row[spec.APIKey])
		if key == "" {
			continue
		}
		apiIndex[key] = append(apiIndex[key], i)
	}

	apiMatched := make([]bool, len(apiTable.Rows))

	for _, dbRow := range dbTable.Rows {
		key := normalizeKey(dbRow[spec.DBKey])
		var matches []int
		if key != "" {
			matches = apiIndex[key]
		}

		if len(matches) == 0 {
			if spec.How == "left" || spec.How == "outer" {
				merged.Append(mergeRows(dbRow, nil, dbTable, apiTable, spec))
			}
			continue
		}
		for _, idx := range matches {
			apiMatched[idx] = true
			merged.Append(mergeRows(dbRow, apiTable.Rows[idx], dbTable, apiTable, spec))
		}
	}

	if spec.How == "right" || spec.How == "outer" {
		for i, row := range apiTable.Rows {
			if !apiMatched[i] {
				merged.Append(mergeRows(nil, row, dbTable, apiTable, spec))
			}
		}
	}

	return merged, nil
}

func mergeRows(dbRow, apiRow record.Row, dbTable, apiTable *record.Table, spec Spec) record.Row {
	out := make(record.Row, len(dbTable.Columns)+len(apiTable.Columns))
	if dbRow != nil {
		for _, c := range dbTable.Columns {
			out[spec.DBPrefix+c] = dbRow[c]
		}
	}
	if apiRow != nil {
		for _, c := range apiTable.Columns {
			out[spec.APIPrefix+c] = apiRow[c]
		}
	}
	return out
}

func normalizeKey(v any) string {
	return strings.TrimSpace(utils.ToString(v))
}
