package schema

import (
	"encoding/json"
	"strings"
)

// TableIdentity is the optional database / schema plus table name recovered
// from a CREATE TABLE header. Empty string means absent.
type TableIdentity struct {
	Database string `json:"database,omitempty"`
	Schema   string `json:"schema,omitempty"`
	Table    string `json:"table,omitempty"`
}

// FullyQualifiedName joins the present parts with dots, database first.
func (t TableIdentity) FullyQualifiedName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{t.Database, t.Schema, t.Table} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

func (t TableIdentity) IsZero() bool {
	return t.Database == "" && t.Schema == "" && t.Table == ""
}

// Length is the raw length/precision text of a column ("255", "10,2").
// The zero value is "no length", which is not the same as Length{Set: true}.
type Length struct {
	Value string
	Set   bool
}

func NewLength(v string) Length {
	return Length{Value: v, Set: true}
}

// IsZero reports whether the length is absent or numerically zero.
func (l Length) IsZero() bool {
	if !l.Set {
		return true
	}
	v := strings.TrimSpace(l.Value)
	if v == "" {
		return true
	}
	return strings.Trim(v, "0") == ""
}

func (l Length) String() string {
	if !l.Set {
		return "-"
	}
	return l.Value
}

func (l Length) MarshalJSON() ([]byte, error) {
	if !l.Set {
		return []byte("null"), nil
	}
	return json.Marshal(l.Value)
}

func (l *Length) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = Length{}
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*l = NewLength(v)
	return nil
}

type Table struct {
	Identity     TableIdentity `json:"identity"`
	Columns      []Column      `json:"columns"`
	PrimaryKey   []string      `json:"primary_key,omitempty"`
	ForeignKeys  []ForeignKey  `json:"foreign_keys,omitempty"`
	Dependencies []string      `json:"-"` // referenced tables, for ordering
}

// Name is the key used for dependency ordering.
func (t *Table) Name() string {
	return t.Identity.FullyQualifiedName()
}

// Column is one recognised column definition, in declaration order.
type Column struct {
	FQN        string `json:"fully_qualified_table"`
	Database   string `json:"database"`
	Schema     string `json:"schema"`
	Table      string `json:"table"`
	Name       string `json:"column_name"`
	SourceType string `json:"source_type"`
	Length     Length `json:"length"`
	IsPK       bool   `json:"is_primary_key"`
	IsFK       bool   `json:"is_foreign_key"`
	RefTable   string `json:"ref_table,omitempty"`
	RefColumn  string `json:"ref_column,omitempty"`
}

func (c Column) Identity() TableIdentity {
	return TableIdentity{Database: c.Database, Schema: c.Schema, Table: c.Table}
}

type ForeignKey struct {
	Column    string `json:"column"`
	RefTable  string `json:"ref_table"`
	RefColumn string `json:"ref_column"`
}

// ConvertedColumn is a Column enriched with its target-side type.
type ConvertedColumn struct {
	Column
	TargetName   string `json:"target_name"`
	TargetType   string `json:"target_type"`
	TargetLength Length `json:"target_length"`
}
