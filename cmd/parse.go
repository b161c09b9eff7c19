package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IDNLab/ddl-parser/internal/ddl"
	"github.com/IDNLab/ddl-parser/internal/schema"
	"github.com/IDNLab/ddl-parser/internal/typemap"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Extract column metadata from CREATE TABLE statements",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := outputMode(outTable, outJSON)
		if err != nil {
			return err
		}
		source, text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		tables := ddl.ParseScript(text)
		if len(tables) == 0 {
			tables = []*schema.Table{ddl.Parse(text)}
		}
		columns := 0
		for _, t := range tables {
			columns += len(t.Columns)
		}
		if columns == 0 {
			return fmt.Errorf("%s: %w", source, typemap.ErrEmptyInput)
		}

		if out == outJSON {
			return writeJSON(cmd.OutOrStdout(), tables)
		}
		return printTables(cmd.OutOrStdout(), tables)
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)
}
