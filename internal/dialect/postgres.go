package dialect

import (
	"context"
	"database/sql"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string         { return "postgres" }
func (d *PostgresDialect) SourceSystem() string { return "postgres" }

func (d *PostgresDialect) GetSchemaName(ctx context.Context, db *sql.DB, input string) (string, error) {
	if input == "" {
		return "public", nil
	}
	return input, nil
}

func (d *PostgresDialect) GetTablesQuery() string {
	return `SELECT table_name FROM information_schema.tables WHERE table_schema = $1 AND table_type = 'BASE TABLE' ORDER BY table_name`
}

// udt_name gives the short type names (int4, varchar, timestamptz) the type
// table lists, where data_type would give "character varying".
const postgresColumnsQuery = `
SELECT
    c.column_name,
    c.udt_name,
    c.character_maximum_length,
    CASE WHEN c.udt_name = 'numeric' THEN c.numeric_precision END,
    CASE WHEN c.udt_name = 'numeric' THEN c.numeric_scale END,
    NULL::integer,
    c.is_nullable
FROM information_schema.columns c
WHERE c.table_schema = $1 AND c.table_name = $2
ORDER BY c.ordinal_position`

const postgresPrimaryKeyQuery = `
SELECT kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
    ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = $1 AND tc.table_name = $2
ORDER BY kcu.ordinal_position`

const postgresForeignKeysQuery = `
SELECT kcu.column_name, ccu.table_schema, ccu.table_name, ccu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
    ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
JOIN information_schema.constraint_column_usage ccu
    ON tc.constraint_name = ccu.constraint_name AND tc.table_schema = ccu.constraint_schema
WHERE tc.constraint_type = 'FOREIGN KEY' AND tc.table_schema = $1 AND tc.table_name = $2
ORDER BY kcu.ordinal_position`

// TableDDL rebuilds the statement from information_schema; PostgreSQL has
// no server-side CREATE TABLE dump.
func (d *PostgresDialect) TableDDL(ctx context.Context, db *sql.DB, schema, table string) (string, error) {
	return rebuildFromCatalog(ctx, db, schema, table, postgresColumnsQuery, postgresPrimaryKeyQuery, postgresForeignKeysQuery)
}
