package ddl

import (
	"strings"

	"github.com/IDNLab/ddl-parser/internal/schema"
)

// ParseColumn reads the name, type token and length of a column definition.
// ok is false for constraint clauses and for anything lacking a name or type.
//
//	`name` VARCHAR(255 char) NOT NULL  ->  name, VARCHAR, "255"
//	amount DECIMAL(10,2)               ->  amount, DECIMAL, "10,2"
//	created DATE                       ->  created, DATE, absent
//	ts TIMESTAMP(6) WITH TIME ZONE     ->  ts, TIMESTAMP WITH TIME ZONE, "6"
func ParseColumn(def string) (name, typ string, length schema.Length, ok bool) {
	def = strings.TrimSpace(def)
	if def == "" || IsConstraint(def) {
		return "", "", schema.Length{}, false
	}

	s := newScanner(def)
	name, ok = s.ident()
	if !ok || name == "" || !s.skipSpace() {
		return "", "", schema.Length{}, false
	}
	typ = s.typeName()
	if typ == "" {
		return "", "", schema.Length{}, false
	}

	s.skipSpace()
	if inner, found := s.group(); found {
		length = leadingLength(inner)
	}
	typ += s.zoneSuffix()
	return name, typ, length, true
}

// zoneSuffix consumes "WITH [LOCAL] TIME ZONE", which belongs to the type:
// TIMESTAMP(6) WITH TIME ZONE is a different type than TIMESTAMP(6).
func (s *scanner) zoneSuffix() string {
	mark := s.pos
	s.skipSpace()
	start := s.pos
	if s.keyword("WITH", "TIME", "ZONE") || s.keyword("WITH", "LOCAL", "TIME", "ZONE") {
		return " " + strings.Join(strings.Fields(s.src[start:s.pos]), " ")
	}
	s.pos = mark
	return ""
}

// leadingLength keeps the leading run of digits and commas of a length
// specification; anything else yields an absent length.
func leadingLength(spec string) schema.Length {
	spec = strings.TrimSpace(spec)
	end := 0
	for end < len(spec) && (spec[end] == ',' || ('0' <= spec[end] && spec[end] <= '9')) {
		end++
	}
	if end == 0 {
		return schema.Length{}
	}
	return schema.NewLength(spec[:end])
}
