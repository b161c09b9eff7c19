package typemap

import (
	"fmt"
	"sort"
	"strings"
)

// Mapping lists, per source system, the type tokens that map onto one
// canonical target type.
type Mapping struct {
	Canonical string              `toml:"canonical" json:"canonical"`
	Sources   map[string][]string `toml:"sources" json:"sources"`
}

// Table is the ordered type-equivalence table. Order matters: it is the
// iteration order used when building reverse maps.
type Table []Mapping

// SourceSystems returns every source system named in the table, sorted.
func (t Table) SourceSystems() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range t {
		for src := range m.Sources {
			if !seen[src] {
				seen[src] = true
				out = append(out, src)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Canonicals returns the canonical type names in table order.
func (t Table) Canonicals() []string {
	out := make([]string, len(t))
	for i, m := range t {
		out[i] = m.Canonical
	}
	return out
}

// Validate rejects empty or repeated canonical names and tokens that map to
// two different canonical types for the same source system.
func (t Table) Validate() error {
	canon := make(map[string]bool, len(t))
	owner := make(map[string]string) // source + token -> canonical

	for i, m := range t {
		name := strings.TrimSpace(m.Canonical)
		if name == "" {
			return &ConfigError{Field: "type table", Message: fmt.Sprintf("entry %d has no canonical type", i)}
		}
		if canon[name] {
			return &ConfigError{Field: "type table", Value: name, Message: "canonical type listed twice"}
		}
		canon[name] = true

		for src, tokens := range m.Sources {
			for _, tok := range tokens {
				key := src + "\x00" + strings.ToUpper(strings.TrimSpace(tok))
				if prev, ok := owner[key]; ok && prev != name {
					return &ConfigError{
						Field:   "type table",
						Value:   tok,
						Message: fmt.Sprintf("%s token maps to both %s and %s", src, prev, name),
					}
				}
				owner[key] = name
			}
		}
	}
	return nil
}
