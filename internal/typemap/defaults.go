package typemap

// Source system names used by the default table.
const (
	Oracle    = "oracle"
	SQLServer = "sql_server"
	Snowflake = "snowflake"
	MySQL     = "mysql"
	Postgres  = "postgres"
	SQLite    = "sqlite"
)

// DefaultTable returns the built-in Snowflake type table. Each call returns a
// fresh copy.
func DefaultTable() Table {
	return Table{
		{Canonical: "TIMESTAMP_NTZ", Sources: map[string][]string{
			Oracle:    {"TIMESTAMP"},
			SQLServer: {"DATETIME", "DATETIME2", "SMALLDATETIME"},
			Snowflake: {"TIMESTAMP_NTZ"},
			MySQL:     {"DATETIME", "TIMESTAMP"},
			Postgres:  {"TIMESTAMP"},
			SQLite:    {"DATETIME", "TIMESTAMP"},
		}},
		{Canonical: "TIMESTAMP_TZ", Sources: map[string][]string{
			Oracle:    {"TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITH LOCAL TIME ZONE"},
			SQLServer: {"DATETIMEOFFSET"},
			Snowflake: {"TIMESTAMP_TZ"},
			Postgres:  {"TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE"},
		}},
		{Canonical: "DATE", Sources: map[string][]string{
			Oracle:    {"DATE"},
			SQLServer: {"DATE"},
			Snowflake: {"DATE"},
			MySQL:     {"DATE"},
			Postgres:  {"DATE"},
			SQLite:    {"DATE"},
		}},
		{Canonical: "TIME", Sources: map[string][]string{
			Oracle:    {"TIME"},
			SQLServer: {"TIME"},
			MySQL:     {"TIME"},
			Postgres:  {"TIME", "TIMETZ", "TIME WITH TIME ZONE"},
		}},
		{Canonical: "NUMBER", Sources: map[string][]string{
			Oracle: {"NUMBER", "INTEGER", "FLOAT"},
			SQLServer: {"INT", "SMALLINT", "BINARY", "BIGINT", "DECIMAL", "NUMERIC", "BIT",
				"TINYINT", "FLOAT", "MONEY", "REAL", "SMALLMONEY"},
			Snowflake: {"NUMBER"},
			MySQL: {"INT", "INTEGER", "TINYINT", "SMALLINT", "MEDIUMINT", "BIGINT", "DECIMAL",
				"NUMERIC", "FLOAT", "DOUBLE", "BIT"},
			Postgres: {"SMALLINT", "INTEGER", "INT", "BIGINT", "INT2", "INT4", "INT8", "NUMERIC",
				"DECIMAL", "REAL", "FLOAT4", "FLOAT8", "DOUBLE", "SERIAL", "BIGSERIAL", "SMALLSERIAL", "MONEY"},
			SQLite: {"INTEGER", "INT", "REAL", "NUMERIC", "DECIMAL"},
		}},
		{Canonical: "VARCHAR", Sources: map[string][]string{
			Oracle:    {"VARCHAR", "VARCHAR2", "CHAR", "NCHAR", "NVARCHAR", "NVARCHAR2"},
			SQLServer: {"VARCHAR", "CHAR", "NVARCHAR", "NVARCHAR2", "NCHAR", "TEXT"},
			Snowflake: {"VARCHAR"},
			MySQL:     {"VARCHAR", "CHAR", "TEXT", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT", "ENUM", "SET"},
			Postgres:  {"VARCHAR", "BPCHAR", "CHAR", "TEXT", "UUID", "CITEXT"},
			SQLite:    {"TEXT", "VARCHAR", "CHAR", "CLOB"},
		}},
		{Canonical: "VARIANT", Sources: map[string][]string{
			Oracle: {"VARIANT", "BLOB", "CLOB"},
			SQLServer: {"VARIANT", "BLOB", "VARBINARY", "IMAGE", "XML", "SQL", "GEOMETRY",
				"GEOGRAPHY", "HIERARCHYID"},
			Snowflake: {"VARIANT"},
			MySQL:     {"JSON", "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB", "BINARY", "VARBINARY", "GEOMETRY"},
			Postgres:  {"JSON", "JSONB", "BYTEA", "XML"},
			SQLite:    {"BLOB"},
		}},
	}
}

// SnowflakeTarget returns the built-in Snowflake target.
func SnowflakeTarget() Target {
	return Target{
		Name:    Snowflake,
		Sources: []string{Oracle, SQLServer, Snowflake, MySQL, Postgres, SQLite},
		Overrides: []Override{
			{Type: "TIMESTAMP_NTZ", Length: "9"},
			{Type: "DATE", Length: ""},
			{Type: "NUMBER", Length: "38,0", WhenSourceEmpty: true},
		},
		CreateMode: CreateModeReplace,
		Suffixes:   map[string]string{"l0": "ST", "l1": "ODS"},
	}
}

// DefaultCatalog is the built-in configuration used when no catalog file is
// given.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Types:   DefaultTable(),
		Targets: []Target{SnowflakeTarget()},
	}
}
