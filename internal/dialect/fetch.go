package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// TableSource is the DDL of one live table.
type TableSource struct {
	Schema string
	Table  string
	DDL    string
}

// FetchAll returns the DDL of the named tables, or of every base table in the
// schema when names is empty. Table names are matched case-insensitively.
func FetchAll(ctx context.Context, db *sql.DB, d Dialect, schema string, names []string) ([]TableSource, error) {
	all, err := queryStrings(ctx, db, d.GetTablesQuery(), schema)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}

	selected := all
	if len(names) > 0 {
		want := make(map[string]bool, len(names))
		for _, n := range names {
			want[strings.ToLower(n)] = true
		}
		selected = nil
		for _, t := range all {
			if want[strings.ToLower(t)] {
				selected = append(selected, t)
			}
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("no matching tables found for inputs: %v", names)
		}
	}

	out := make([]TableSource, 0, len(selected))
	for _, t := range selected {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := d.TableDDL(ctx, db, schema, t)
		if err != nil {
			return nil, err
		}
		out = append(out, TableSource{Schema: schema, Table: t, DDL: text})
	}
	return out, nil
}
