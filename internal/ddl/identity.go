package ddl

import (
	"strings"

	"github.com/IDNLab/ddl-parser/internal/schema"
)

var tableKinds = []string{"TEMPORARY", "TEMP", "TRANSIENT", "DYNAMIC"}

// ExtractIdentity finds the first CREATE TABLE header in text and returns the
// database, schema and table it names. Segments are assigned right to left:
// the last is the table, then schema, then database. A text without a
// recognisable header yields the zero identity.
func ExtractIdentity(text string) schema.TableIdentity {
	for from := 0; from < len(text); {
		at := findKeyword(text[from:], "CREATE")
		if at < 0 {
			break
		}
		s := &scanner{src: text, pos: from + at}
		if id, ok := s.header(); ok {
			return id
		}
		from += at
	}
	return schema.TableIdentity{}
}

// header parses the remainder of "CREATE [OR REPLACE] [kind] TABLE
// [IF NOT EXISTS] name" with the scanner positioned just after CREATE.
func (s *scanner) header() (schema.TableIdentity, bool) {
	if !s.skipSpace() {
		return schema.TableIdentity{}, false
	}
	if s.keyword("OR", "REPLACE") {
		s.skipSpace()
	}
	for _, kind := range tableKinds {
		if s.keyword(kind) {
			s.skipSpace()
			break
		}
	}
	if !s.keyword("TABLE") || !s.skipSpace() {
		return schema.TableIdentity{}, false
	}
	if s.keyword("IF", "NOT", "EXISTS") {
		s.skipSpace()
	}

	segments := s.qualifiedName(3)
	var id schema.TableIdentity
	switch len(segments) {
	case 3:
		id.Database, id.Schema, id.Table = segments[0], segments[1], segments[2]
	case 2:
		id.Schema, id.Table = segments[0], segments[1]
	case 1:
		id.Table = segments[0]
	default:
		return schema.TableIdentity{}, false
	}
	return id, true
}

// qualifiedName reads up to max dot-separated identifiers. Whitespace around
// the dots is allowed.
func (s *scanner) qualifiedName(max int) []string {
	var out []string
	for len(out) < max {
		mark := s.pos
		if len(out) > 0 {
			s.skipSpace()
			if s.peek() != '.' {
				s.pos = mark
				break
			}
			s.pos++
			s.skipSpace()
		}
		name, ok := s.ident()
		if !ok {
			s.pos = mark
			break
		}
		out = append(out, strings.TrimSpace(name))
	}
	return out
}
