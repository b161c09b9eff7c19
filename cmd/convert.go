package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/IDNLab/ddl-parser/internal/engine"
	"github.com/IDNLab/ddl-parser/internal/typemap"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert CREATE TABLE statements to the target type system",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := outputMode(outTable, outJSON, outDDL)
		if err != nil {
			return err
		}
		source, text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		p, err := engine.New(cat, pipelineOptions(), log.Default())
		if err != nil {
			return err
		}

		inputs := engine.SplitInputs(source, text)
		if len(inputs) == 0 {
			return fmt.Errorf("%s: %w", source, typemap.ErrEmptyInput)
		}
		results := make([]*engine.Result, 0, len(inputs))
		for _, in := range inputs {
			res, err := p.Run(in.Source, in.Text)
			if err != nil {
				return err
			}
			results = append(results, res)
		}

		return emit(cmd.OutOrStdout(), out, engine.OrderResults(results))
	},
}

func init() {
	RootCmd.AddCommand(convertCmd)
}
