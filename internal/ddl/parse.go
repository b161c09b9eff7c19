// Package ddl extracts table identity, columns and key constraints from
// CREATE TABLE statements.
//
// Parsing is tolerant: text that does not fit the grammar produces absent
// values or is skipped, never an error. Every function is pure and safe for
// concurrent use.
package ddl

import "github.com/IDNLab/ddl-parser/internal/schema"

// Parse runs the full extraction over one CREATE TABLE statement.
func Parse(text string) *schema.Table {
	return Assemble(ExtractIdentity(text), SplitDefinitions(ColumnsBlock(text)))
}

// Assemble combines the identity with the column definitions, marking key
// columns, in declaration order.
func Assemble(id schema.TableIdentity, defs []string) *schema.Table {
	pks := ExtractPrimaryKeys(defs)
	fks := ExtractForeignKeys(defs)

	isPK := make(map[string]bool, len(pks))
	for _, c := range pks {
		isPK[c] = true
	}
	fkOf := make(map[string]schema.ForeignKey, len(fks))
	for _, fk := range fks {
		if _, seen := fkOf[fk.Column]; !seen {
			fkOf[fk.Column] = fk
		}
	}

	t := &schema.Table{
		Identity:    id,
		Columns:     []schema.Column{},
		PrimaryKey:  pks,
		ForeignKeys: fks,
	}
	fqn := id.FullyQualifiedName()

	for _, def := range defs {
		name, typ, length, ok := ParseColumn(def)
		if !ok {
			continue
		}
		col := schema.Column{
			FQN:        fqn,
			Database:   id.Database,
			Schema:     id.Schema,
			Table:      id.Table,
			Name:       name,
			SourceType: typ,
			Length:     length,
			IsPK:       isPK[name],
		}
		if fk, ok := fkOf[name]; ok {
			col.IsFK = true
			col.RefTable = fk.RefTable
			col.RefColumn = fk.RefColumn
		}
		t.Columns = append(t.Columns, col)
	}

	seen := make(map[string]bool)
	for _, fk := range fks {
		if !seen[fk.RefTable] {
			seen[fk.RefTable] = true
			t.Dependencies = append(t.Dependencies, fk.RefTable)
		}
	}
	return t
}

// ParseScript splits a script into statements and parses every statement
// that carries a CREATE TABLE header. Other statements are skipped.
func ParseScript(script string) []*schema.Table {
	var tables []*schema.Table
	for _, stmt := range SplitStatements(script) {
		if ExtractIdentity(stmt).IsZero() {
			continue
		}
		tables = append(tables, Parse(stmt))
	}
	return tables
}
