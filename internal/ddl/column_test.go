package ddl

import (
	"testing"

	"github.com/IDNLab/ddl-parser/internal/schema"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		def    string
		name   string
		typ    string
		length schema.Length
	}{
		{"`name` VARCHAR(255 char) NOT NULL", "name", "VARCHAR", schema.NewLength("255")},
		{"amount DECIMAL(10,2)", "amount", "DECIMAL", schema.NewLength("10,2")},
		{"created DATE", "created", "DATE", schema.Length{}},
		{`"Order Id" INT`, "Order Id", "INT", schema.Length{}},
		{"[Full Name] NVARCHAR(100) NULL", "Full Name", "NVARCHAR", schema.NewLength("100")},
		{"DataCreazione DATETIME2(3) NOT NULL CONSTRAINT DF DEFAULT (SYSDATETIME())", "DataCreazione", "DATETIME2", schema.NewLength("3")},
		{"code VARCHAR2 (30 BYTE)", "code", "VARCHAR2", schema.NewLength("30")},
		{"notes NVARCHAR(MAX)", "notes", "NVARCHAR", schema.Length{}},
		{"price FLOAT(15,3)", "price", "FLOAT", schema.NewLength("15,3")},
		{"ratio DECIMAL( 10, 2 )", "ratio", "DECIMAL", schema.NewLength("10,")},
		{"ts TIMESTAMP_NTZ(9)", "ts", "TIMESTAMP_NTZ", schema.NewLength("9")},
		{"Attivo BIT NOT NULL CONSTRAINT DF_Attivo DEFAULT (1)", "Attivo", "BIT", schema.Length{}},
		{"zero NUMBER(0)", "zero", "NUMBER", schema.NewLength("0")},
		{"hired TIMESTAMP(6) WITH TIME ZONE", "hired", "TIMESTAMP WITH TIME ZONE", schema.NewLength("6")},
		{"seen timestamp  with local\ttime zone", "seen", "timestamp with local time zone", schema.Length{}},
		{"stamped TIMESTAMP WITHOUT TIME ZONE", "stamped", "TIMESTAMP", schema.Length{}},
		{"key VARCHAR(50)", "key", "VARCHAR", schema.NewLength("50")},
		{"index INT NOT NULL", "index", "INT", schema.Length{}},
		{"fulltext TEXT", "fulltext", "TEXT", schema.Length{}},
	}
	for _, tt := range tests {
		name, typ, length, ok := ParseColumn(tt.def)
		if !ok {
			t.Errorf("ParseColumn(%q) rejected", tt.def)
			continue
		}
		if name != tt.name || typ != tt.typ || length != tt.length {
			t.Errorf("ParseColumn(%q) = %q %q %#v, want %q %q %#v", tt.def, name, typ, length, tt.name, tt.typ, tt.length)
		}
	}
}

func TestParseColumnRejects(t *testing.T) {
	defs := []string{
		"CONSTRAINT pk PRIMARY KEY (id)",
		"constraint ck check (a > 0)",
		"PRIMARY KEY (id)",
		"FOREIGN KEY (a) REFERENCES t (b)",
		"UNIQUE (email)",
		"CHECK (a > 0)",
		"KEY idx_name (name)",
		"INDEX idx_name (name)",
		"KEY `idx_role` (`role_id`)",
		"UNIQUE KEY `uq_email` (`email`)",
		"FULLTEXT KEY `ft_body` (`body`)",
		"SPATIAL INDEX (`geo`)",
		"INDEX (a, b)",
		"justaname",
		"col 123",
		"",
	}
	for _, def := range defs {
		if name, typ, _, ok := ParseColumn(def); ok {
			t.Errorf("ParseColumn(%q) = %q %q, want rejection", def, name, typ)
		}
	}
}

func TestIsConstraintWordBoundary(t *testing.T) {
	// a column whose name starts like a keyword is still a column
	for _, def := range []string{"checksum INT", "unique_code VARCHAR(5)", "keyword TEXT", "primary_key INT"} {
		if IsConstraint(def) {
			t.Errorf("IsConstraint(%q) = true", def)
		}
	}
}
