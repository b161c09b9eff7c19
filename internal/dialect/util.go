package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// columnInfo is one catalog row used to rebuild a CREATE TABLE.
type columnInfo struct {
	Name     string
	Type     string
	Length   string
	Nullable bool
}

type foreignKeyInfo struct {
	Column    string
	RefSchema string
	RefTable  string
	RefColumn string
}

// buildCreateTable renders catalog rows as a CREATE TABLE statement the
// parser understands.
func buildCreateTable(schema, table string, cols []columnInfo, pk []string, fks []foreignKeyInfo) string {
	var parts []string
	for _, c := range cols {
		def := quote(c.Name) + " " + strings.ToUpper(c.Type)
		if c.Length != "" {
			def += "(" + c.Length + ")"
		}
		if !c.Nullable {
			def += " NOT NULL"
		}
		parts = append(parts, def)
	}
	if len(pk) > 0 {
		parts = append(parts, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(quoteAll(pk), ", ")))
	}
	for _, fk := range fks {
		ref := quote(fk.RefTable)
		if fk.RefSchema != "" {
			ref = quote(fk.RefSchema) + "." + ref
		}
		parts = append(parts, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)", quote(fk.Column), ref, quote(fk.RefColumn)))
	}

	name := quote(table)
	if schema != "" {
		name = quote(schema) + "." + name
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", name, strings.Join(parts, ",\n  "))
}

// lengthSpec derives the length text for a catalog row from its type family.
func lengthSpec(dataType string, charLen, precision, scale, dtPrecision sql.NullInt64) string {
	t := strings.ToLower(dataType)
	switch {
	case strings.Contains(t, "char") || strings.Contains(t, "binary"):
		if !charLen.Valid {
			return ""
		}
		if charLen.Int64 < 0 {
			return "MAX"
		}
		return fmt.Sprint(charLen.Int64)
	case t == "decimal" || t == "numeric":
		if !precision.Valid {
			return ""
		}
		return fmt.Sprintf("%d,%d", precision.Int64, scale.Int64)
	case t == "datetime2" || t == "datetimeoffset" || t == "time":
		if !dtPrecision.Valid {
			return ""
		}
		return fmt.Sprint(dtPrecision.Int64)
	}
	return ""
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = quote(n)
	}
	return out
}

// queryStrings runs a query returning one string column.
func queryStrings(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// queryForeignKeys runs a query returning column, ref schema, ref table, ref column.
func queryForeignKeys(ctx context.Context, db *sql.DB, query string, args ...any) ([]foreignKeyInfo, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []foreignKeyInfo
	for rows.Next() {
		var fk foreignKeyInfo
		if err := rows.Scan(&fk.Column, &fk.RefSchema, &fk.RefTable, &fk.RefColumn); err != nil {
			return nil, err
		}
		out = append(out, fk)
	}
	return out, rows.Err()
}

// queryColumns runs a query returning name, data type, character length,
// numeric precision, numeric scale, datetime precision and nullability.
func queryColumns(ctx context.Context, db *sql.DB, query string, args ...any) ([]columnInfo, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []columnInfo
	for rows.Next() {
		var name, dataType, nullable string
		var charLen, precision, scale, dtPrecision sql.NullInt64
		if err := rows.Scan(&name, &dataType, &charLen, &precision, &scale, &dtPrecision, &nullable); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		out = append(out, columnInfo{
			Name:     name,
			Type:     dataType,
			Length:   lengthSpec(dataType, charLen, precision, scale, dtPrecision),
			Nullable: strings.EqualFold(nullable, "YES"),
		})
	}
	return out, rows.Err()
}

// rebuildFromCatalog assembles a CREATE TABLE from the three catalog queries.
func rebuildFromCatalog(ctx context.Context, db *sql.DB, schema, table, colsQuery, pkQuery, fkQuery string) (string, error) {
	cols, err := queryColumns(ctx, db, colsQuery, schema, table)
	if err != nil {
		return "", fmt.Errorf("failed to query columns of %s.%s: %w", schema, table, err)
	}
	if len(cols) == 0 {
		return "", fmt.Errorf("table %s.%s not found", schema, table)
	}
	pk, err := queryStrings(ctx, db, pkQuery, schema, table)
	if err != nil {
		return "", fmt.Errorf("failed to query primary key of %s.%s: %w", schema, table, err)
	}
	fks, err := queryForeignKeys(ctx, db, fkQuery, schema, table)
	if err != nil {
		return "", fmt.Errorf("failed to query foreign keys of %s.%s: %w", schema, table, err)
	}
	return buildCreateTable(schema, table, cols, pk, fks), nil
}
