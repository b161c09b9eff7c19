package ddl

import (
	"testing"

	"github.com/IDNLab/ddl-parser/internal/schema"
)

func TestExtractIdentity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want schema.TableIdentity
	}{
		{"bare", "CREATE TABLE users (id INT)", schema.TableIdentity{Table: "users"}},
		{"three parts", "create or replace transient table dbo.RENT.Clienti (", schema.TableIdentity{Database: "dbo", Schema: "RENT", Table: "Clienti"}},
		{"backticks", "CREATE OR REPLACE TABLE `warehouse`.`staging`.`users` ( `user_id` INT )", schema.TableIdentity{Database: "warehouse", Schema: "staging", Table: "users"}},
		{"double quotes", `CREATE OR REPLACE TABLE "MY_DATABASE"."MY_SCHEMA"."MY_COMPLEX_TABLE" (`, schema.TableIdentity{Database: "MY_DATABASE", Schema: "MY_SCHEMA", Table: "MY_COMPLEX_TABLE"}},
		{"brackets", "CREATE TABLE [dbo].[Order Lines] (", schema.TableIdentity{Schema: "dbo", Table: "Order Lines"}},
		{"two parts spaced", "CREATE TEMP TABLE s . t (a INT)", schema.TableIdentity{Schema: "s", Table: "t"}},
		{"temporary", "CREATE TEMPORARY TABLE scratch (a INT)", schema.TableIdentity{Table: "scratch"}},
		{"if not exists", "CREATE TABLE IF NOT EXISTS app.logs (a INT)", schema.TableIdentity{Schema: "app", Table: "logs"}},
		{"leading comment", "-- generated\nCREATE DYNAMIC TABLE x (a INT)", schema.TableIdentity{Table: "x"}},
		{"mixed quoting", "CREATE TABLE \"db\".sales.[Orders] (", schema.TableIdentity{Database: "db", Schema: "sales", Table: "Orders"}},
		{"first create is not a table", "CREATE INDEX idx ON t (a); CREATE TABLE real_one (a INT)", schema.TableIdentity{Table: "real_one"}},
		{"view", "CREATE VIEW v AS SELECT 1", schema.TableIdentity{}},
		{"no name", "CREATE TABLE (a INT)", schema.TableIdentity{}},
		{"not ddl", "SELECT * FROM users", schema.TableIdentity{}},
		{"empty", "", schema.TableIdentity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractIdentity(tt.text); got != tt.want {
				t.Errorf("ExtractIdentity(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
