package cmd

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IDNLab/ddl-parser/internal/typemap"
)

var typemapCmd = &cobra.Command{
	Use:   "typemap",
	Short: "Print the type mapping table, or the reverse map of --source-system",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := outputMode(outTable, outJSON)
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		if !cmd.Flags().Changed("source-system") {
			if out == outJSON {
				return writeJSON(w, cat)
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CANONICAL\tSOURCE SYSTEM\tTOKENS")
			for _, m := range cat.Types {
				for _, sys := range cat.Types.SourceSystems() {
					if tokens, ok := m.Sources[sys]; ok {
						fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Canonical, sys, strings.Join(tokens, ", "))
					}
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(w, "\nTargets: %s\n", strings.Join(cat.TargetNames(), ", "))
			return nil
		}

		source, _ := cmd.Flags().GetString("source-system")
		known := cat.Types.SourceSystems()
		if !slices.Contains(known, source) {
			return &typemap.ConfigError{Field: "source system", Value: source, Allowed: known}
		}
		reverse := typemap.BuildReverseMap(cat.Types, source)
		if out == outJSON {
			return writeJSON(w, reverse)
		}

		tokens := make([]string, 0, len(reverse))
		for tok := range reverse {
			tokens = append(tokens, tok)
		}
		sort.Strings(tokens)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s TYPE\tCANONICAL\n", strings.ToUpper(source))
		for _, tok := range tokens {
			fmt.Fprintf(tw, "%s\t%s\n", tok, reverse[tok])
		}
		return tw.Flush()
	},
}

func init() {
	RootCmd.AddCommand(typemapCmd)
}
