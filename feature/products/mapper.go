package products

import (
	"dbapi-compare/core/join"
	"dbapi-compare/core/record"
	"dbapi-compare/core/utils"
)

// FieldMap resolves the prefixed column names of a merged row back to the
// typed views Evaluate expects.
type FieldMap struct {
	DBJfsku      string
	DBCondition  string
	DBKey        string
	APIJfsku     string
	APICondition string
}

// NewFieldMap derives the merged column names from the join prefixes.
func NewFieldMap(spec join.Spec) FieldMap {
	dbPrefix := spec.DBPrefix
	if dbPrefix == "" {
		dbPrefix = "db_"
	}
	apiPrefix := spec.APIPrefix
	if apiPrefix == "" {
		apiPrefix = "api_"
	}
	return FieldMap{
		DBJfsku:      dbPrefix + WawiJfskuColumn,
		DBCondition:  dbPrefix + ConditionColumn,
		DBKey:        dbPrefix + WawiKeyColumn,
		APIJfsku:     apiPrefix + APIJfskuField,
		APICondition: apiPrefix + APIConditionsKey,
	}
}

// Record builds the joined record for one merged row. An API jfsku column
// that is absent (left join miss) or nil maps to a nil pointer, signalling
// an unregistered article.
func (m FieldMap) Record(row record.Row) JoinedRecord {
	rec := JoinedRecord{
		DB: DBView{
			Jfsku:      utils.ToString(row[m.DBJfsku]),
			Condition:  utils.ToString(row[m.DBCondition]),
			ArticleKey: utils.ToInt(row[m.DBKey]),
		},
		API: APIView{
			Condition: utils.ToString(row[m.APICondition]),
		},
	}
	if v, ok := row[m.APIJfsku]; ok && v != nil {
		s := utils.ToString(v)
		rec.API.Jfsku = &s
	}
	return rec
}
