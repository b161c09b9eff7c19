package ddl

import (
	"strings"

	"github.com/IDNLab/ddl-parser/internal/schema"
)

// Definitions starting with one of these never describe a column.
var constraintLeads = [][]string{
	{"CONSTRAINT"},
	{"PRIMARY", "KEY"},
	{"FOREIGN", "KEY"},
	{"UNIQUE"},
	{"CHECK"},
}

// IsConstraint reports whether a definition is a table-level constraint or
// index clause rather than a column.
func IsConstraint(def string) bool {
	for _, lead := range constraintLeads {
		if newScanner(def).keyword(lead...) {
			return true
		}
	}
	return isIndexLine(def)
}

// isIndexLine matches MySQL index lines as printed by SHOW CREATE TABLE:
// "[FULLTEXT|SPATIAL] KEY|INDEX [name] (cols)". A bare word glued to its
// parenthesis is a column type, so "key VARCHAR(50)" stays a column.
func isIndexLine(def string) bool {
	s := newScanner(strings.TrimSpace(def))
	switch {
	case s.keyword("FULLTEXT"), s.keyword("SPATIAL"):
		s.skipSpace()
		if s.keyword("KEY") || s.keyword("INDEX") {
			s.skipSpace()
		}
	case s.keyword("KEY"), s.keyword("INDEX"):
		s.skipSpace()
	default:
		return false
	}

	if s.peek() == '(' {
		return true
	}
	if _, quoted := closingQuote(s.peek()); quoted {
		if _, ok := s.ident(); !ok {
			return false
		}
		s.skipSpace()
		return s.peek() == '('
	}
	if s.word() == "" {
		return false
	}
	return s.skipSpace() && s.peek() == '('
}

// ExtractPrimaryKeys returns the primary key columns declared across all
// definitions, in order of appearance and without duplicates. Both the
// table-level form "[CONSTRAINT name] PRIMARY KEY [CLUSTERED] (a, b)" and the
// column-level form "id INT PRIMARY KEY" are recognised.
func ExtractPrimaryKeys(defs []string) []string {
	var cols []string
	seen := make(map[string]bool)
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}

	for _, def := range defs {
		after := findKeyword(def, "PRIMARY", "KEY")
		if after < 0 {
			continue
		}
		if !IsConstraint(def) {
			if name, _, _, ok := ParseColumn(def); ok {
				add(name)
			}
			continue
		}
		open := strings.IndexByte(def[after:], '(')
		if open < 0 {
			continue
		}
		s := &scanner{src: def, pos: after + open}
		list, ok := s.group()
		if !ok {
			continue
		}
		for _, c := range columnList(list) {
			add(c)
		}
	}
	return cols
}

// ExtractForeignKeys returns one ForeignKey per local/referenced column pair.
// Lists are paired by position; surplus entries on either side are dropped.
func ExtractForeignKeys(defs []string) []schema.ForeignKey {
	var fks []schema.ForeignKey
	for _, def := range defs {
		if IsConstraint(def) {
			fks = append(fks, tableForeignKey(def)...)
			continue
		}
		if fk, ok := columnForeignKey(def); ok {
			fks = append(fks, fk)
		}
	}
	return fks
}

// tableForeignKey handles "[CONSTRAINT n] FOREIGN KEY [n] (a, b) REFERENCES t (x, y)".
func tableForeignKey(def string) []schema.ForeignKey {
	after := findKeyword(def, "FOREIGN", "KEY")
	if after < 0 {
		return nil
	}
	s := &scanner{src: def, pos: after}
	s.skipSpace()
	if s.peek() != '(' {
		// MySQL allows an index name here
		if _, ok := s.ident(); !ok {
			return nil
		}
		s.skipSpace()
	}
	local, ok := s.group()
	if !ok {
		return nil
	}
	s.skipSpace()
	refTable, refList, ok := s.references()
	if !ok {
		return nil
	}

	locals, refs := columnList(local), columnList(refList)
	n := min(len(locals), len(refs))
	out := make([]schema.ForeignKey, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, schema.ForeignKey{Column: locals[i], RefTable: refTable, RefColumn: refs[i]})
	}
	return out
}

// columnForeignKey handles "role_id INT REFERENCES roles(id)".
func columnForeignKey(def string) (schema.ForeignKey, bool) {
	at := findKeyword(def, "REFERENCES")
	if at < 0 {
		return schema.ForeignKey{}, false
	}
	name, _, _, ok := ParseColumn(def)
	if !ok {
		return schema.ForeignKey{}, false
	}
	s := &scanner{src: def, pos: at - len("REFERENCES")}
	refTable, refList, ok := s.references()
	if !ok {
		return schema.ForeignKey{}, false
	}
	fk := schema.ForeignKey{Column: name, RefTable: refTable}
	if refs := columnList(refList); len(refs) > 0 {
		fk.RefColumn = refs[0]
	}
	return fk, true
}

// references parses "REFERENCES table (cols)". The column list is optional
// only for the column-level form; callers pairing lists get nothing to pair.
func (s *scanner) references() (table, list string, ok bool) {
	if !s.keyword("REFERENCES") {
		return "", "", false
	}
	s.skipSpace()
	start := s.pos
	for !s.eof() && !isSpace(s.peek()) && s.peek() != '(' {
		s.pos++
	}
	table = unquote(s.src[start:s.pos])
	if table == "" {
		return "", "", false
	}
	s.skipSpace()
	list, _ = s.group()
	return table, list, true
}

// columnList splits a parenthesised column list. Each entry keeps only its
// leading identifier, dropping ASC/DESC and prefix lengths.
func columnList(list string) []string {
	var out []string
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, ok := newScanner(entry).ident()
		if !ok {
			name = trimQuotes(entry)
		}
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
