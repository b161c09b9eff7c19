package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/IDNLab/ddl-parser/internal/engine"
	"github.com/IDNLab/ddl-parser/internal/schema"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return ""
}

func printTables(w io.Writer, tables []*schema.Table) error {
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		name := t.Name()
		if name == "" {
			name = "(no table name)"
		}
		fmt.Fprintf(w, "📋 %s (%d columns)\n", name, len(t.Columns))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "COLUMN\tTYPE\tLENGTH\tPK\tFK\tREFERENCES")
		for _, c := range t.Columns {
			ref := ""
			if c.IsFK {
				ref = c.RefTable + "(" + c.RefColumn + ")"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.Name, c.SourceType, c.Length, yesNo(c.IsPK), yesNo(c.IsFK), ref)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func printResults(w io.Writer, results []*engine.Result) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if r.Err != nil {
			fmt.Fprintf(w, "[!] %s: %v\n", r.Source, r.Err)
			continue
		}
		fmt.Fprintf(w, "📋 %s (%d columns)\n", r.FQN, r.Count)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "COLUMN\tSOURCE TYPE\tLENGTH\tTARGET NAME\tTARGET TYPE\tTARGET LENGTH")
		for _, c := range r.Columns {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.Name, c.SourceType, c.Length, c.TargetName, c.TargetType, c.TargetLength)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Fields: %s\n", r.FieldList)
	}
	return nil
}

func printDDL(w io.Writer, results []*engine.Result) {
	for _, r := range results {
		if r.TargetDDL == "" {
			continue
		}
		fmt.Fprintf(w, "%s\n\n", r.TargetDDL)
	}
}

// emit writes results in the chosen output mode.
func emit(w io.Writer, out string, results []*engine.Result) error {
	switch out {
	case outJSON:
		return writeJSON(w, results)
	case outDDL:
		printDDL(w, results)
		return nil
	default:
		return printResults(w, results)
	}
}
