package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/IDNLab/ddl-parser/internal/ddl"
	"github.com/IDNLab/ddl-parser/internal/schema"
)

// Input is one CREATE TABLE statement and where it came from.
type Input struct {
	Source string
	Text   string
}

// Batch runs every input through the pipeline with at most workers
// statements in flight. Results keep input order; a failing statement is
// reported on its Result and does not stop the others. onDone, when set, is
// called once per finished statement and must be safe for concurrent use.
func (p *Pipeline) Batch(ctx context.Context, inputs []Input, workers int, onDone func()) ([]*Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.Run(in.Source, in.Text)
			if err != nil {
				res = &Result{Source: in.Source, Err: err, Error: err.Error()}
			}
			results[i] = res
			if onDone != nil {
				onDone()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("batch interrupted: %w", err)
	}
	return results, nil
}

// OrderResults puts successful results in foreign key dependency order,
// followed by failed and missing ones in their original order.
func OrderResults(results []*Result) []*Result {
	var tables []*schema.Table
	byTable := make(map[*schema.Table]*Result)
	var failed []*Result

	for _, r := range results {
		switch {
		case r == nil:
		case r.Err != nil || r.Table == nil:
			failed = append(failed, r)
		default:
			tables = append(tables, r.Table)
			byTable[r.Table] = r
		}
	}

	out := make([]*Result, 0, len(results))
	for _, t := range schema.OrderByDependencies(tables) {
		out = append(out, byTable[t])
	}
	return append(out, failed...)
}

// LoadInputs reads the given files and directories (every *.sql inside, not
// recursive) and splits them into CREATE TABLE statements. Other statements
// are dropped.
func LoadInputs(paths []string) ([]Input, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*.sql"))
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", p, err)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}

	var inputs []Input
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		inputs = append(inputs, SplitInputs(filepath.Base(f), string(data))...)
	}
	return inputs, nil
}

// SplitInputs turns a script into one Input per CREATE TABLE statement,
// labelled source#n when the script holds more than one.
func SplitInputs(source, script string) []Input {
	var stmts []string
	for _, s := range ddl.SplitStatements(script) {
		if !ddl.ExtractIdentity(s).IsZero() {
			stmts = append(stmts, s)
		}
	}
	if len(stmts) == 0 && strings.TrimSpace(script) != "" {
		// headerless text is passed on whole
		stmts = []string{script}
	}

	inputs := make([]Input, len(stmts))
	for i, s := range stmts {
		label := source
		if len(stmts) > 1 {
			label = fmt.Sprintf("%s#%d", source, i+1)
		}
		inputs[i] = Input{Source: label, Text: s}
	}
	return inputs
}
