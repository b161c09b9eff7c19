package dialect

import (
	"context"
	"database/sql"
)

// Dialect retrieves CREATE TABLE text from a live source database.
type Dialect interface {
	// Name is the database/sql driver name.
	Name() string
	// SourceSystem is the type table key the fetched DDL is converted from.
	SourceSystem() string

	// Schema resolution
	GetSchemaName(ctx context.Context, db *sql.DB, input string) (string, error)
	GetTablesQuery() string // binds the schema as its only parameter

	// TableDDL returns a single CREATE TABLE statement for schema.table.
	TableDDL(ctx context.Context, db *sql.DB, schema, table string) (string, error)
}
