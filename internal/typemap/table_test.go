package typemap

import (
	"reflect"
	"testing"
)

func TestDefaultTableIsValid(t *testing.T) {
	if err := DefaultTable().Validate(); err != nil {
		t.Fatalf("default table: %v", err)
	}
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog: %v", err)
	}
}

func TestDefaultTableOrder(t *testing.T) {
	want := []string{"TIMESTAMP_NTZ", "TIMESTAMP_TZ", "DATE", "TIME", "NUMBER", "VARCHAR", "VARIANT"}
	if got := DefaultTable().Canonicals(); !reflect.DeepEqual(got, want) {
		t.Errorf("canonicals = %q, want %q", got, want)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{"token collision", Table{
			{Canonical: "NUMBER", Sources: map[string][]string{"sql_server": {"FLOAT"}}},
			{Canonical: "VARIANT", Sources: map[string][]string{"sql_server": {"float"}}},
		}},
		{"duplicate canonical", Table{
			{Canonical: "DATE", Sources: map[string][]string{"oracle": {"DATE"}}},
			{Canonical: "DATE", Sources: map[string][]string{"sql_server": {"DATE"}}},
		}},
		{"empty canonical", Table{
			{Canonical: " ", Sources: map[string][]string{"oracle": {"DATE"}}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if !IsConfigError(err) {
				t.Fatalf("Validate() = %v, want ConfigError", err)
			}
		})
	}
}

func TestValidateAllowsSharedTokenAcrossSystems(t *testing.T) {
	table := Table{
		{Canonical: "NUMBER", Sources: map[string][]string{"oracle": {"FLOAT"}}},
		{Canonical: "VARIANT", Sources: map[string][]string{"sql_server": {"FLOAT"}}},
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestSourceSystems(t *testing.T) {
	want := []string{"mysql", "oracle", "postgres", "snowflake", "sql_server", "sqlite"}
	if got := DefaultTable().SourceSystems(); !reflect.DeepEqual(got, want) {
		t.Errorf("SourceSystems() = %q, want %q", got, want)
	}
}
