package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IDNLab/ddl-parser/internal/engine"
)

var batchOutDir string

var batchCmd = &cobra.Command{
	Use:   "batch <dir|file>...",
	Short: "Convert every CREATE TABLE statement found in .sql files, in parallel",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := outputMode(outTable, outJSON, outDDL)
		if err != nil {
			return err
		}
		inputs, err := engine.LoadInputs(args)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			return fmt.Errorf("no CREATE TABLE statements found in %v", args)
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		p, err := engine.New(cat, pipelineOptions(), log.Default())
		if err != nil {
			return err
		}

		workers := viper.GetInt("settings.workers")
		log.Printf("Converting %d statements with %d workers...", len(inputs), workers)
		start := time.Now()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(inputs)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Converting: "
		})

		results, err := p.Batch(ctx, inputs, workers, func() {
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		ordered := engine.OrderResults(results)
		if batchOutDir != "" {
			if err := writeDDLFiles(batchOutDir, ordered); err != nil {
				return err
			}
		}

		w := cmd.OutOrStdout()
		if out != outTable {
			return emit(w, out, ordered)
		}

		fmt.Fprintln(w, "\n📊 Summary Report (Dependency Order):")
		failed, columns := 0, 0
		for i, r := range ordered {
			if r.Err != nil {
				failed++
				fmt.Fprintf(w, "[!] [%02d/%02d] %-30s : %v\n", i+1, len(ordered), r.Source, r.Err)
				continue
			}
			fmt.Fprintf(w, "[✓] [%02d/%02d] %-30s : %d columns (%s)\n", i+1, len(ordered), r.FQN, r.Count, r.Source)
			columns += r.Count
		}
		fmt.Fprintln(w, "--------------------------------------------------")
		fmt.Fprintf(w, "Total Columns: %d, Failed Statements: %d\n", columns, failed)
		log.Printf("Batch Done! Time Elapsed: %s", time.Since(start))
		return nil
	},
}

// writeDDLFiles writes one <table>.sql per rendered result, prefixed with
// its position in dependency order.
func writeDDLFiles(dir string, results []*engine.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	n := 0
	for _, r := range results {
		if r.TargetDDL == "" {
			continue
		}
		n++
		name := fmt.Sprintf("%03d_%s.sql", n, strings.ReplaceAll(strings.ToLower(r.FQN), ".", "_"))
		if err := os.WriteFile(filepath.Join(dir, name), []byte(r.TargetDDL+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	log.Printf("Wrote %d DDL files to %s", n, dir)
	return nil
}

func init() {
	RootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("workers", 0, "Statements converted in parallel (overrides config)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "Directory to write the generated target DDL to")

	viper.BindPFlag("settings.workers", batchCmd.Flags().Lookup("workers"))
}
