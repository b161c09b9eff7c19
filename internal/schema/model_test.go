package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/IDNLab/ddl-parser/internal/schema"
)

func TestFullyQualifiedName(t *testing.T) {
	tests := []struct {
		id   schema.TableIdentity
		want string
	}{
		{schema.TableIdentity{Database: "warehouse", Schema: "staging", Table: "users"}, "warehouse.staging.users"},
		{schema.TableIdentity{Schema: "dbo", Table: "Clienti"}, "dbo.Clienti"},
		{schema.TableIdentity{Database: "db", Table: "t"}, "db.t"},
		{schema.TableIdentity{Table: "t"}, "t"},
		{schema.TableIdentity{}, ""},
	}
	for _, tt := range tests {
		if got := tt.id.FullyQualifiedName(); got != tt.want {
			t.Errorf("%+v = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestLengthIsZero(t *testing.T) {
	tests := []struct {
		l    schema.Length
		want bool
	}{
		{schema.Length{}, true},
		{schema.NewLength(""), true},
		{schema.NewLength("0"), true},
		{schema.NewLength("255"), false},
		{schema.NewLength("10,2"), false},
		{schema.NewLength("0,0"), false},
	}
	for _, tt := range tests {
		if got := tt.l.IsZero(); got != tt.want {
			t.Errorf("%#v.IsZero() = %v, want %v", tt.l, got, tt.want)
		}
	}
}

func TestLengthJSON(t *testing.T) {
	tests := []struct {
		l    schema.Length
		want string
	}{
		{schema.Length{}, `null`},
		{schema.NewLength(""), `""`},
		{schema.NewLength("38,0"), `"38,0"`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(tt.l)
		if err != nil {
			t.Fatalf("marshal %#v: %v", tt.l, err)
		}
		if string(b) != tt.want {
			t.Errorf("marshal %#v = %s, want %s", tt.l, b, tt.want)
		}
		var back schema.Length
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if back != tt.l {
			t.Errorf("unmarshal %s = %#v, want %#v", b, back, tt.l)
		}
	}
}
