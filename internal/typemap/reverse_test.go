package typemap

import "testing"

func TestBuildReverseMap(t *testing.T) {
	table := Table{
		{Canonical: "TIMESTAMP_NTZ", Sources: map[string][]string{"sql_server": {"DATETIME", "DATETIME2", "SMALLDATETIME"}}},
		{Canonical: "VARCHAR", Sources: map[string][]string{"sql_server": {"nvarchar"}, "oracle": {"VARCHAR2"}}},
	}
	rev := BuildReverseMap(table, "sql_server")

	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"DATETIME2", "TIMESTAMP_NTZ", true},
		{"datetime2", "TIMESTAMP_NTZ", true},
		{"NVARCHAR", "VARCHAR", true},
		{"VARCHAR2", "", false},
		{"FROBNICATE", "", false},
	}
	for _, tt := range tests {
		got, ok := rev.Lookup(tt.token)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q) = %q, %v, want %q, %v", tt.token, got, ok, tt.want, tt.ok)
		}
	}
	if _, stored := rev["NVARCHAR"]; !stored {
		t.Error("tokens are not stored upper-cased")
	}
}

func TestBuildReverseMapUnknownSystem(t *testing.T) {
	if rev := BuildReverseMap(DefaultTable(), "db2"); len(rev) != 0 {
		t.Errorf("got %d entries, want none", len(rev))
	}
}

func TestBuildReverseMapLastWriteWins(t *testing.T) {
	table := Table{
		{Canonical: "NUMBER", Sources: map[string][]string{"x": {"FLOAT"}}},
		{Canonical: "VARIANT", Sources: map[string][]string{"x": {"FLOAT"}}},
	}
	if got, _ := BuildReverseMap(table, "x").Lookup("FLOAT"); got != "VARIANT" {
		t.Errorf("FLOAT = %q, want VARIANT", got)
	}
}

func TestResolveFallsBackToLetters(t *testing.T) {
	rev := BuildReverseMap(Table{
		{Canonical: "TIMESTAMP_NTZ", Sources: map[string][]string{"oracle": {"TIMESTAMP"}}},
		{Canonical: "VARCHAR", Sources: map[string][]string{"oracle": {"VARCHAR"}}},
		{Canonical: "NUMBER", Sources: map[string][]string{"oracle": {"INT8"}}},
	}, "oracle")

	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"VARCHAR", "VARCHAR", true},
		{"varchar2", "VARCHAR", true},
		{"INT8", "NUMBER", true},
		{"INT4", "", false},
		{"TIMESTAMP WITH TIME ZONE", "", false},
		{"2VARCHAR", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := rev.Resolve(tt.token)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Resolve(%q) = %q, %v, want %q, %v", tt.token, got, ok, tt.want, tt.ok)
		}
	}
}
