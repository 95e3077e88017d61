package models

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// StringList is an ordered list of strings stored as a native text[] array
// on postgres and as a JSON-serialized text column on every other dialect,
// so the same model migrates under DB_ADAPTER=mysql and the sqlite-backed
// tests.
type StringList []string

func (StringList) GormDataType() string {
	return "text"
}

func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (l StringList) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	if db.Dialector.Name() == "postgres" {
		return clause.Expr{SQL: "?", Vars: []interface{}{pq.StringArray(l)}}
	}

	data, err := json.Marshal([]string(l))

	if err != nil {
		db.AddError(err)
		return clause.Expr{SQL: "?", Vars: []interface{}{"[]"}}
	}

	return clause.Expr{SQL: "?", Vars: []interface{}{string(data)}}
}

// Value is the dialect-agnostic fallback for raw SQL paths; gorm itself
// goes through GormValue.
func (l StringList) Value() (driver.Value, error) {
	data, err := json.Marshal([]string(l))
	return string(data), err
}

// Scan accepts both storage encodings: postgres array literals start with
// '{', serialized JSON with '['.
func (l *StringList) Scan(value interface{}) error {
	var raw []byte

	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	if raw[0] == '{' {
		var arr pq.StringArray

		if err := arr.Scan(raw); err != nil {
			return err
		}

		*l = StringList(arr)
		return nil
	}

	return json.Unmarshal(raw, (*[]string)(l))
}
