package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/IDNLab/ddl-parser/internal/typemap"
)

const usersDDL = `CREATE TABLE warehouse.staging.users (user_id INT NOT NULL, name VARCHAR(255), role_id INT, CONSTRAINT pk_users PRIMARY KEY(user_id), CONSTRAINT fk_role FOREIGN KEY(role_id) REFERENCES warehouse.staging.roles(role_id));`

const rolesDDL = `CREATE TABLE warehouse.staging.roles (role_id INT PRIMARY KEY, label NVARCHAR(50), created DATETIME2(3))`

func newPipeline(t *testing.T, opts Options) *Pipeline {
	t.Helper()
	p, err := New(typemap.DefaultCatalog(), opts, nil)
	if err != nil {
		t.Fatalf("New(%+v): %v", opts, err)
	}
	return p
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []Options{
		{SourceSystem: "sql_server", Target: "redshift"},
		{SourceSystem: "db2", Target: "snowflake"},
		{SourceSystem: "sql_server", Target: "snowflake", Layer: "gold"},
	}
	for _, opts := range tests {
		if _, err := New(typemap.DefaultCatalog(), opts, nil); !typemap.IsConfigError(err) {
			t.Errorf("New(%+v) = %v, want ConfigError", opts, err)
		}
	}
}

func TestRun(t *testing.T) {
	p := newPipeline(t, Options{SourceSystem: "sql_server", Target: "snowflake", Layer: "l0", Render: true})

	res, err := p.Run("users.sql", usersDDL)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.FQN != "warehouse.staging.users" || res.Count != 3 {
		t.Fatalf("result = %s with %d columns", res.FQN, res.Count)
	}
	if res.FieldList != "USER_ID,NAME,ROLE_ID" {
		t.Errorf("field list = %q", res.FieldList)
	}
	for _, c := range res.Columns {
		if c.Name == "user_id" && (c.TargetType != "NUMBER" || c.TargetLength.Value != "38,0") {
			t.Errorf("user_id -> %s %s", c.TargetType, c.TargetLength)
		}
	}
	wantDDL := `CREATE OR REPLACE TABLE WAREHOUSE.STAGING.USERS_ST (
  USER_ID NUMBER(38,0),
  NAME VARCHAR(255),
  ROLE_ID NUMBER(38,0),
  PRIMARY KEY (USER_ID)
);`
	if res.TargetDDL != wantDDL {
		t.Errorf("target DDL =\n%s\nwant\n%s", res.TargetDDL, wantDDL)
	}
}

func TestRunOracle(t *testing.T) {
	p := newPipeline(t, Options{SourceSystem: "oracle", Target: "snowflake"})

	res, err := p.Run("emp.sql", "CREATE TABLE HR.EMP (EMP_ID NUMBER(10), EMP_NAME VARCHAR2(100 BYTE), HIRED DATE, UPDATED TIMESTAMP(6) WITH TIME ZONE)")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := map[string][2]string{
		"EMP_ID":   {"NUMBER", "10"},
		"EMP_NAME": {"VARCHAR", "100"},
		"HIRED":    {"DATE", ""},
		"UPDATED":  {"TIMESTAMP_TZ", "6"},
	}
	if res.Count != len(want) {
		t.Fatalf("got %d columns, want %d", res.Count, len(want))
	}
	for _, c := range res.Columns {
		w := want[c.Name]
		if c.TargetType != w[0] || !c.TargetLength.Set || c.TargetLength.Value != w[1] {
			t.Errorf("%s -> %s %#v, want %s %q", c.Name, c.TargetType, c.TargetLength, w[0], w[1])
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	p := newPipeline(t, Options{SourceSystem: "oracle", Target: "snowflake"})
	for _, text := range []string{"", "CREATE TABLE t ()", "CREATE TABLE t (CONSTRAINT pk PRIMARY KEY (a))"} {
		if _, err := p.Run("x", text); !errors.Is(err, typemap.ErrEmptyInput) {
			t.Errorf("Run(%q) = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestRunLogsUnmapped(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(typemap.DefaultCatalog(), Options{SourceSystem: "oracle", Target: "snowflake", Render: true}, log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	res, err := p.Run("x", "CREATE TABLE t (a FROBNICATE, b SDO_GEOMETRY)")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TargetDDL != "" {
		t.Errorf("target DDL = %q, want none", res.TargetDDL)
	}
	if !strings.Contains(buf.String(), "2 unmapped") || !strings.Contains(buf.String(), "no target DDL") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestBatch(t *testing.T) {
	f := gofakeit.New(3)
	p := newPipeline(t, Options{SourceSystem: "sql_server", Target: "snowflake", Render: true})

	var inputs []Input
	for i := 0; i < 60; i++ {
		if i%10 == 9 {
			inputs = append(inputs, Input{Source: fmt.Sprintf("broken%d", i), Text: "CREATE TABLE nothing ()"})
			continue
		}
		var cols []string
		n := f.Number(1, 12)
		for j := 0; j < n; j++ {
			cols = append(cols, fmt.Sprintf("c%d %s(%d)", j, f.RandomString([]string{"INT", "NVARCHAR", "DATETIME2", "XML"}), f.Number(1, 200)))
		}
		inputs = append(inputs, Input{
			Source: fmt.Sprintf("t%d", i),
			Text:   fmt.Sprintf("CREATE TABLE dbo.t%d (%s)", i, strings.Join(cols, ", ")),
		})
	}

	var done atomic.Int32
	results, err := p.Batch(context.Background(), inputs, 4, func() { done.Add(1) })
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if int(done.Load()) != len(inputs) {
		t.Errorf("progress called %d times, want %d", done.Load(), len(inputs))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d missing", i)
		}
		if r.Source != inputs[i].Source {
			t.Errorf("result %d source %q, want %q", i, r.Source, inputs[i].Source)
		}
		broken := i%10 == 9
		if broken != (r.Err != nil) {
			t.Errorf("result %d err = %v", i, r.Err)
		}
		if broken && !errors.Is(r.Err, typemap.ErrEmptyInput) {
			t.Errorf("result %d err = %v, want ErrEmptyInput", i, r.Err)
		}
	}
}

func TestBatchCancelled(t *testing.T) {
	p := newPipeline(t, Options{SourceSystem: "sql_server", Target: "snowflake"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Batch(ctx, []Input{{Source: "a", Text: usersDDL}}, 2, nil)
	if err == nil {
		t.Fatal("want error from cancelled batch")
	}
}

func TestOrderResults(t *testing.T) {
	p := newPipeline(t, Options{SourceSystem: "sql_server", Target: "snowflake"})
	results, err := p.Batch(context.Background(), []Input{
		{Source: "users", Text: usersDDL},
		{Source: "bad", Text: "nothing here"},
		{Source: "roles", Text: rolesDDL},
	}, 2, nil)
	if err != nil {
		t.Fatal(err)
	}

	ordered := OrderResults(results)
	var got []string
	for _, r := range ordered {
		got = append(got, r.Source)
	}
	if strings.Join(got, ",") != "roles,users,bad" {
		t.Errorf("order = %v", got)
	}
}

func TestLoadInputs(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.sql": usersDDL + "\nINSERT INTO x VALUES (1);\n" + rolesDDL + ";",
		"b.sql": rolesDDL,
		"c.txt": usersDDL,
		"d.sql": "",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	inputs, err := LoadInputs([]string{dir, filepath.Join(dir, "c.txt")})
	if err != nil {
		t.Fatalf("LoadInputs: %v", err)
	}
	var got []string
	for _, in := range inputs {
		got = append(got, in.Source)
	}
	if strings.Join(got, ",") != "a.sql#1,a.sql#2,b.sql,c.txt" {
		t.Errorf("sources = %v", got)
	}

	if _, err := LoadInputs([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("missing path: want error")
	}
}
