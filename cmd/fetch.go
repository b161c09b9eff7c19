package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IDNLab/ddl-parser/internal/dialect"
	"github.com/IDNLab/ddl-parser/internal/engine"
)

var (
	fetchDSN    string
	fetchDriver string
	fetchSchema string
	dryRun      bool
	tables      []string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Read CREATE TABLE statements from a live database and convert them",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := outputMode(outTable, outJSON, outDDL)
		if err != nil {
			return err
		}

		var config DBConfig
		if fetchDSN != "" {
			config = DBConfig{Name: "CLI Wrapper", Driver: fetchDriver, DSN: fetchDSN, Schema: fetchSchema, Active: true}
			if config.Driver == "" {
				config.Driver = detectDriver(fetchDSN)
			}
		} else {
			activeConfig, err := GetActiveDBConfig()
			if err != nil {
				return fmt.Errorf("could not determine database: %w (or use --dsn and --driver flags)", err)
			}
			config = *activeConfig
			if fetchSchema != "" {
				config.Schema = fetchSchema
			}
		}

		ctx := cmd.Context()
		db, err := sql.Open(config.Driver, config.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		log.Printf("🦉 Connected to %s via %s", config.Name, config.Driver)

		d := dialect.GetDialect(config.Driver)
		schemaName, err := d.GetSchemaName(ctx, db, config.Schema)
		if err != nil {
			return err
		}

		// Flag > Config > All
		names := tables
		if len(names) == 0 {
			names = viper.GetStringSlice("settings.tables")
		}

		sources, err := dialect.FetchAll(ctx, db, d, schemaName, names)
		if err != nil {
			return err
		}
		log.Printf("Fetched DDL of %d tables from %s", len(sources), schemaName)

		w := cmd.OutOrStdout()
		if dryRun {
			log.Println("[SIMULATION] Dry-Run Mode Active: nothing is converted.")
			for i, s := range sources {
				fmt.Fprintf(w, "-- [%02d] %s.%s\n%s;\n\n", i+1, s.Schema, s.Table, s.DDL)
			}
			return nil
		}

		opts := pipelineOptions()
		opts.SourceSystem = fetchSourceSystem(viper.GetViper(), cmd.Flags().Changed("source-system"), d)
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		p, err := engine.New(cat, opts, log.Default())
		if err != nil {
			return err
		}

		inputs := make([]engine.Input, len(sources))
		for i, s := range sources {
			inputs[i] = engine.Input{Source: s.Schema + "." + s.Table, Text: s.DDL}
		}
		results, err := p.Batch(ctx, inputs, viper.GetInt("settings.workers"), nil)
		if err != nil {
			return err
		}
		return emit(w, out, engine.OrderResults(results))
	},
}

func init() {
	RootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchDSN, "dsn", "", "Database Source Name (DSN), overrides the active databases entry")
	fetchCmd.Flags().StringVar(&fetchDriver, "driver", "", "Driver for --dsn: mysql, postgres, sqlserver, oracle or sqlite (detected when empty)")
	fetchCmd.Flags().StringVar(&fetchSchema, "schema", "", "Schema to read (dialect default when empty)")
	fetchCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the fetched DDL without converting it")
	fetchCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific tables to fetch (comma-separated)")
}

// fetchSourceSystem keeps a source system given by flag or config file and
// otherwise converts from the dialect the DDL was read with.
func fetchSourceSystem(v *viper.Viper, flagSet bool, d dialect.Dialect) string {
	if flagSet || v.InConfig("settings.source_system") {
		return v.GetString("settings.source_system")
	}
	return d.SourceSystem()
}
