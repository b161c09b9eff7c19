package dialect

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "source.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		`CREATE TABLE roles (role_id INTEGER PRIMARY KEY, label VARCHAR(50))`,
		`CREATE TABLE users (user_id INTEGER NOT NULL, name VARCHAR(255), role_id INTEGER, PRIMARY KEY (user_id), FOREIGN KEY (role_id) REFERENCES roles(role_id))`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	return db
}

func TestSQLiteFetchAll(t *testing.T) {
	db := openSQLite(t)
	d := GetDialect("sqlite")
	ctx := context.Background()

	schema, err := d.GetSchemaName(ctx, db, "")
	if err != nil || schema != "main" {
		t.Fatalf("schema = %q, %v", schema, err)
	}

	all, err := FetchAll(ctx, db, d, schema, nil)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(all) != 2 || all[0].Table != "roles" || all[1].Table != "users" {
		t.Fatalf("tables = %+v", all)
	}
	if !strings.HasPrefix(all[1].DDL, "CREATE TABLE users") {
		t.Errorf("DDL = %q", all[1].DDL)
	}

	some, err := FetchAll(ctx, db, d, schema, []string{"USERS"})
	if err != nil {
		t.Fatalf("FetchAll(USERS): %v", err)
	}
	if len(some) != 1 || some[0].Table != "users" {
		t.Errorf("selected = %+v", some)
	}

	if _, err := FetchAll(ctx, db, d, schema, []string{"missing"}); err == nil {
		t.Error("FetchAll(missing) returned no error")
	}
}

func TestSQLiteTableDDLMissing(t *testing.T) {
	db := openSQLite(t)
	if _, err := (&SQLiteDialect{}).TableDDL(context.Background(), db, "main", "nope"); err == nil {
		t.Error("TableDDL(nope) returned no error")
	}
}
