package dialect

import (
	"context"
	"database/sql"
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string         { return "sqlserver" }
func (d *MSSQLDialect) SourceSystem() string { return "sql_server" }

func (d *MSSQLDialect) GetSchemaName(ctx context.Context, db *sql.DB, input string) (string, error) {
	if input == "" {
		return "dbo", nil
	}
	return input, nil
}

// go-mssqldb binds @p1, @p2 rather than ?.
func (d *MSSQLDialect) GetTablesQuery() string {
	return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

const mssqlColumnsQuery = `
SELECT
    c.COLUMN_NAME,
    c.DATA_TYPE,
    c.CHARACTER_MAXIMUM_LENGTH,
    CAST(c.NUMERIC_PRECISION AS INT),
    CAST(c.NUMERIC_SCALE AS INT),
    CAST(c.DATETIME_PRECISION AS INT),
    c.IS_NULLABLE
FROM INFORMATION_SCHEMA.COLUMNS c
WHERE c.TABLE_SCHEMA = @p1 AND c.TABLE_NAME = @p2
ORDER BY c.ORDINAL_POSITION`

const mssqlPrimaryKeyQuery = `
SELECT kcu.COLUMN_NAME
FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
    ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME AND tc.TABLE_SCHEMA = kcu.TABLE_SCHEMA
WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY' AND tc.TABLE_SCHEMA = @p1 AND tc.TABLE_NAME = @p2
ORDER BY kcu.ORDINAL_POSITION`

// sys catalog views keep composite key columns paired by position, which the
// INFORMATION_SCHEMA views do not.
const mssqlForeignKeysQuery = `
SELECT pc.name, SCHEMA_NAME(rt.schema_id), rt.name, rc.name
FROM sys.foreign_key_columns fkc
JOIN sys.tables pt ON fkc.parent_object_id = pt.object_id
JOIN sys.columns pc ON pc.object_id = fkc.parent_object_id AND pc.column_id = fkc.parent_column_id
JOIN sys.tables rt ON fkc.referenced_object_id = rt.object_id
JOIN sys.columns rc ON rc.object_id = fkc.referenced_object_id AND rc.column_id = fkc.referenced_column_id
WHERE SCHEMA_NAME(pt.schema_id) = @p1 AND pt.name = @p2
ORDER BY fkc.constraint_object_id, fkc.constraint_column_id`

func (d *MSSQLDialect) TableDDL(ctx context.Context, db *sql.DB, schema, table string) (string, error) {
	return rebuildFromCatalog(ctx, db, schema, table, mssqlColumnsQuery, mssqlPrimaryKeyQuery, mssqlForeignKeysQuery)
}
