package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type OracleDialect struct{}

func (d *OracleDialect) Name() string         { return "oracle" }
func (d *OracleDialect) SourceSystem() string { return "oracle" }

// GetSchemaName defaults to the connected user. Oracle stores unquoted names
// upper-cased.
func (d *OracleDialect) GetSchemaName(ctx context.Context, db *sql.DB, input string) (string, error) {
	if input != "" {
		return strings.ToUpper(input), nil
	}
	var user string
	if err := db.QueryRowContext(ctx, "SELECT USER FROM DUAL").Scan(&user); err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return user, nil
}

func (d *OracleDialect) GetTablesQuery() string {
	return `SELECT TABLE_NAME FROM ALL_TABLES WHERE OWNER = :1 ORDER BY TABLE_NAME`
}

// Storage clauses carry their own parentheses after the column list, which
// would confuse the parser, so they are switched off for the session.
const oracleTransforms = `
BEGIN
    DBMS_METADATA.SET_TRANSFORM_PARAM(DBMS_METADATA.SESSION_TRANSFORM, 'SEGMENT_ATTRIBUTES', FALSE);
    DBMS_METADATA.SET_TRANSFORM_PARAM(DBMS_METADATA.SESSION_TRANSFORM, 'STORAGE', FALSE);
    DBMS_METADATA.SET_TRANSFORM_PARAM(DBMS_METADATA.SESSION_TRANSFORM, 'TABLESPACE', FALSE);
    DBMS_METADATA.SET_TRANSFORM_PARAM(DBMS_METADATA.SESSION_TRANSFORM, 'SQLTERMINATOR', FALSE);
END;`

// TableDDL asks DBMS_METADATA for the table definition on a pinned session
// so the transform parameters apply.
func (d *OracleDialect) TableDDL(ctx context.Context, db *sql.DB, schema, table string) (string, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, oracleTransforms); err != nil {
		return "", fmt.Errorf("failed to set metadata transforms: %w", err)
	}

	var ddl string
	err = conn.QueryRowContext(ctx, `SELECT DBMS_METADATA.GET_DDL('TABLE', :1, :2) FROM DUAL`, table, schema).Scan(&ddl)
	if err != nil {
		return "", fmt.Errorf("failed to get DDL of %s.%s: %w", schema, table, err)
	}
	return strings.TrimSpace(ddl), nil
}
