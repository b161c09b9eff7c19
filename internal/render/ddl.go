// Package render produces target-side artefacts from converted columns.
package render

import (
	"fmt"
	"strings"

	"github.com/IDNLab/ddl-parser/internal/schema"
	"github.com/IDNLab/ddl-parser/internal/typemap"
)

// Generator writes CREATE TABLE statements for one target.
type Generator struct {
	target *typemap.Target
}

func NewGenerator(target *typemap.Target) *Generator {
	return &Generator{target: target}
}

// CreateTable renders the target table for the converted columns. The layer
// selects the table name suffix; an empty layer adds none. Columns whose type
// is unmapped are listed as comments so the statement stays valid.
func (g *Generator) CreateTable(id schema.TableIdentity, cols []schema.ConvertedColumn, layer string) (string, error) {
	if id.Table == "" {
		return "", fmt.Errorf("render: table name is missing")
	}
	suffix, err := g.target.Suffix(layer)
	if err != nil {
		return "", err
	}

	var parts, skipped, pk []string
	for _, c := range cols {
		if c.TargetType == typemap.Unmapped {
			skipped = append(skipped, fmt.Sprintf("-- %s: unmapped source type %s", c.TargetName, c.SourceType))
			continue
		}
		parts = append(parts, g.columnDefinition(c))
		if c.IsPK {
			pk = append(pk, quoteIdentifier(c.TargetName))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("render %s: %w", id.FullyQualifiedName(), typemap.ErrEmptyInput)
	}
	if len(pk) > 0 {
		parts = append(parts, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pk, ", ")))
	}

	body := strings.Join(parts, ",\n  ")
	if len(skipped) > 0 {
		body += "\n  " + strings.Join(skipped, "\n  ")
	}
	return fmt.Sprintf("%s %s (\n  %s\n);", g.createClause(), TableName(id, suffix), body), nil
}

func (g *Generator) createClause() string {
	switch g.target.CreateMode {
	case typemap.CreateModeCreate:
		return "CREATE TABLE"
	case typemap.CreateModeIfNotExists:
		return "CREATE TABLE IF NOT EXISTS"
	default:
		return "CREATE OR REPLACE TABLE"
	}
}

func (g *Generator) columnDefinition(c schema.ConvertedColumn) string {
	def := quoteIdentifier(c.TargetName) + " " + c.TargetType
	if c.TargetLength.Set && c.TargetLength.Value != "" {
		def += "(" + c.TargetLength.Value + ")"
	}
	return def
}

// TableName is the upper-cased, dot-joined target name with the layer suffix
// appended to the table part.
func TableName(id schema.TableIdentity, suffix string) string {
	table := id.Table
	if suffix != "" {
		table += "_" + suffix
	}
	var parts []string
	for _, p := range []string{id.Database, id.Schema, table} {
		if p != "" {
			parts = append(parts, quoteIdentifier(strings.ToUpper(p)))
		}
	}
	return strings.Join(parts, ".")
}

// FieldList joins the upper-cased column names with commas, in order.
func FieldList(cols []schema.ConvertedColumn) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.TargetName
	}
	return strings.Join(names, ",")
}

// quoteIdentifier leaves plain identifiers bare and double-quotes the rest.
func quoteIdentifier(name string) string {
	for i := 0; i < len(name); i++ {
		c := name[i]
		plain := c == '_' || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || (i > 0 && '0' <= c && c <= '9')
		if !plain {
			return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
		}
	}
	if name == "" {
		return `""`
	}
	return name
}
