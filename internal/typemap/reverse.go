package typemap

import "strings"

// ReverseMap resolves an upper-cased source type token to its canonical type.
type ReverseMap map[string]string

// Lookup is case-insensitive.
func (r ReverseMap) Lookup(token string) (string, bool) {
	c, ok := r[strings.ToUpper(strings.TrimSpace(token))]
	return c, ok
}

// Resolve is Lookup with one fallback: a single-word token that misses is
// retried on its leading letters, so VARCHAR2 or DATETIME2 fall back to
// VARCHAR or DATETIME when only the base name is listed. Multi-word tokens
// such as "TIMESTAMP WITH TIME ZONE" never fall back to their first word.
func (r ReverseMap) Resolve(token string) (string, bool) {
	if c, ok := r.Lookup(token); ok {
		return c, true
	}
	token = strings.TrimSpace(token)
	if strings.ContainsAny(token, " \t") {
		return "", false
	}
	if base := letterPrefix(token); base != "" && base != token {
		return r.Lookup(base)
	}
	return "", false
}

func letterPrefix(s string) string {
	i := 0
	for i < len(s) && (s[i] >= 'A' && s[i] <= 'Z' || s[i] >= 'a' && s[i] <= 'z') {
		i++
	}
	return s[:i]
}

// BuildReverseMap inverts the table for one source system. Canonical types
// are visited in table order, so a token listed under two canonical types
// resolves to the later one. An unknown source system yields an empty map.
func BuildReverseMap(t Table, sourceSystem string) ReverseMap {
	rev := make(ReverseMap)
	for _, m := range t {
		tokens, ok := m.Sources[sourceSystem]
		if !ok {
			continue
		}
		for _, tok := range tokens {
			rev[strings.ToUpper(strings.TrimSpace(tok))] = m.Canonical
		}
	}
	return rev
}
