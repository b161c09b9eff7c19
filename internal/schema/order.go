package schema

import (
	"log"
	"strings"
)

// OrderByDependencies returns the tables so that referenced tables come
// before the tables that reference them. References to tables outside the
// input are ignored. Cycles are broken by picking the table with the fewest
// unresolved references, preferring one that takes part in a mutual reference.
func OrderByDependencies(tables []*Table) []*Table {
	keys := make(map[string]int, len(tables)*2)
	for i, t := range tables {
		keys[strings.ToLower(t.Name())] = i
	}
	// bare table names resolve too, unless ambiguous
	bare := make(map[string]int)
	for i, t := range tables {
		k := strings.ToLower(t.Identity.Table)
		if _, dup := bare[k]; dup {
			bare[k] = -1
			continue
		}
		bare[k] = i
	}

	deps := make([][]int, len(tables))
	for i, t := range tables {
		for _, ref := range t.Dependencies {
			j, ok := resolveRef(ref, keys, bare)
			if !ok || j == i {
				continue
			}
			deps[i] = append(deps[i], j)
		}
	}

	done := make([]bool, len(tables))
	sorted := make([]*Table, 0, len(tables))

	pending := func(i int) int {
		n := 0
		for _, j := range deps[i] {
			if !done[j] {
				n++
			}
		}
		return n
	}

	for len(sorted) < len(tables) {
		progressed := false
		for i, t := range tables {
			if done[i] || pending(i) > 0 {
				continue
			}
			done[i] = true
			sorted = append(sorted, t)
			progressed = true
		}
		if progressed {
			continue
		}

		best, bestScore := -1, 0
		for i := range tables {
			if done[i] {
				continue
			}
			score := -100 * pending(i)
			if mutual(i, deps) {
				score += 500
			}
			if best == -1 || score > bestScore ||
				(score == bestScore && tables[i].Name() < tables[best].Name()) {
				best, bestScore = i, score
			}
		}
		log.Printf("[Order] Breaking circular reference at %s (score %d)", tables[best].Name(), bestScore)
		done[best] = true
		sorted = append(sorted, tables[best])
	}

	return sorted
}

func resolveRef(ref string, keys, bare map[string]int) (int, bool) {
	k := strings.ToLower(ref)
	if i, ok := keys[k]; ok {
		return i, true
	}
	if dot := strings.LastIndexByte(k, '.'); dot >= 0 {
		k = k[dot+1:]
	}
	if i, ok := bare[k]; ok && i >= 0 {
		return i, true
	}
	return 0, false
}

// mutual reports whether table i depends on a table that depends back on i.
func mutual(i int, deps [][]int) bool {
	for _, j := range deps[i] {
		for _, k := range deps[j] {
			if k == i {
				return true
			}
		}
	}
	return false
}
