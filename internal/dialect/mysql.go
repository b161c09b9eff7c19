package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string         { return "mysql" }
func (d *MysqlDialect) SourceSystem() string { return "mysql" }

func (d *MysqlDialect) GetSchemaName(ctx context.Context, db *sql.DB, input string) (string, error) {
	if input != "" {
		return input, nil
	}
	var name sql.NullString
	if err := db.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&name); err != nil {
		return "", fmt.Errorf("failed to get database name: %w", err)
	}
	if !name.Valid || name.String == "" {
		return "", fmt.Errorf("no database selected in DSN")
	}
	return name.String, nil
}

func (d *MysqlDialect) GetTablesQuery() string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

// TableDDL uses SHOW CREATE TABLE and qualifies the header with the schema.
func (d *MysqlDialect) TableDDL(ctx context.Context, db *sql.DB, schema, table string) (string, error) {
	ref := backtick(table)
	if schema != "" {
		ref = backtick(schema) + "." + ref
	}
	var name, ddl string
	if err := db.QueryRowContext(ctx, "SHOW CREATE TABLE "+ref).Scan(&name, &ddl); err != nil {
		return "", fmt.Errorf("failed to show create table %s: %w", ref, err)
	}
	return strings.Replace(ddl, "CREATE TABLE "+backtick(name), "CREATE TABLE "+ref, 1), nil
}

func backtick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
