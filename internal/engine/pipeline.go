package engine

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/IDNLab/ddl-parser/internal/ddl"
	"github.com/IDNLab/ddl-parser/internal/render"
	"github.com/IDNLab/ddl-parser/internal/schema"
	"github.com/IDNLab/ddl-parser/internal/typemap"
)

type Options struct {
	SourceSystem string
	Target       string
	Layer        string // table suffix selector, "" for none
	Render       bool   // also produce the target CREATE TABLE
}

// Result is the outcome for one CREATE TABLE statement.
type Result struct {
	Source    string                   `json:"source,omitempty"`
	Identity  schema.TableIdentity     `json:"identity"`
	FQN       string                   `json:"fully_qualified_table"`
	Columns   []schema.ConvertedColumn `json:"columns"`
	FieldList string                   `json:"field_list"`
	Count     int                      `json:"count"`
	TargetDDL string                   `json:"target_ddl,omitempty"`
	Error     string                   `json:"error,omitempty"`

	Table *schema.Table `json:"-"`
	Err   error         `json:"-"`
}

// Pipeline parses, converts and renders statements for one source system and
// target. It is safe for concurrent use.
type Pipeline struct {
	opts   Options
	conv   *typemap.Converter
	gen    *render.Generator
	logger *log.Logger
}

// New checks the options against the catalog. Unknown targets, layers and
// source systems the target does not accept are ConfigErrors.
func New(cat *typemap.Catalog, opts Options, logger *log.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	conv, err := cat.Converter(opts.Target, opts.SourceSystem, logger)
	if err != nil {
		return nil, err
	}
	if _, err := conv.Target().Suffix(opts.Layer); err != nil {
		return nil, err
	}
	return &Pipeline{
		opts:   opts,
		conv:   conv,
		gen:    render.NewGenerator(conv.Target()),
		logger: logger,
	}, nil
}

func (p *Pipeline) Options() Options {
	return p.opts
}

// Run processes one statement. A statement without any recognisable column
// fails with typemap.ErrEmptyInput.
func (p *Pipeline) Run(source, text string) (*Result, error) {
	tbl := ddl.Parse(text)
	label := tbl.Name()
	if label == "" {
		label = source
	}

	cols, err := p.conv.Convert(tbl.Columns)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", label, err)
	}

	res := &Result{
		Source:    source,
		Identity:  tbl.Identity,
		FQN:       tbl.Name(),
		Columns:   cols,
		FieldList: render.FieldList(cols),
		Count:     len(cols),
		Table:     tbl,
	}
	if tbl.Identity.IsZero() {
		p.logger.Printf("[engine] %s: no CREATE TABLE header found, columns carry no table name", label)
	}

	if p.opts.Render {
		out, err := p.gen.CreateTable(tbl.Identity, cols, p.opts.Layer)
		switch {
		case err == nil:
			res.TargetDDL = out
		case errors.Is(err, typemap.ErrEmptyInput):
			p.logger.Printf("[engine] %s: every column is %s, no target DDL", label, typemap.Unmapped)
		default:
			p.logger.Printf("[engine] %s: target DDL skipped: %v", label, err)
		}
	}
	return res, nil
}
