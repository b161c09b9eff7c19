package dialect

import (
	"context"
	"database/sql"
	"fmt"
)

type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string         { return "sqlite" }
func (d *SQLiteDialect) SourceSystem() string { return "sqlite" }

func (d *SQLiteDialect) GetSchemaName(ctx context.Context, db *sql.DB, input string) (string, error) {
	if input == "" {
		return "main", nil
	}
	return input, nil
}

// GetTablesQuery only lists the main database; the dummy clause consumes the
// schema argument every caller binds.
func (d *SQLiteDialect) GetTablesQuery() string {
	return `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND ? IS NOT NULL ORDER BY name`
}

// TableDDL returns the statement SQLite kept when the table was created.
func (d *SQLiteDialect) TableDDL(ctx context.Context, db *sql.DB, schema, table string) (string, error) {
	var ddl sql.NullString
	err := db.QueryRowContext(ctx, `SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&ddl)
	if err != nil {
		return "", fmt.Errorf("failed to read DDL of %s: %w", table, err)
	}
	if !ddl.Valid {
		return "", fmt.Errorf("table %s has no stored DDL", table)
	}
	return ddl.String, nil
}
