package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IDNLab/ddl-parser/internal/engine"
	"github.com/IDNLab/ddl-parser/internal/typemap"
)

const (
	outTable = "table"
	outJSON  = "json"
	outDDL   = "ddl"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Schema string `mapstructure:"schema"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// detectDriver guesses the database/sql driver from the shape of a DSN.
func detectDriver(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "sqlserver://"):
		return "sqlserver"
	case strings.HasPrefix(lower, "oracle://"):
		return "oracle"
	case strings.HasPrefix(lower, "file:"), strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return "sqlite"
	case strings.Contains(lower, "postgres") || strings.Contains(lower, "sslmode"):
		return "postgres"
	default:
		return "mysql"
	}
}

// loadCatalog reads settings.typemap, falling back to the built-in catalog.
func loadCatalog() (*typemap.Catalog, error) {
	path := viper.GetString("settings.typemap")
	if path == "" {
		return typemap.DefaultCatalog(), nil
	}
	cat, err := typemap.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Using type map: %s (%d types, targets %v)", path, len(cat.Types), cat.TargetNames())
	return cat, nil
}

func pipelineOptions() engine.Options {
	return engine.Options{
		SourceSystem: viper.GetString("settings.source_system"),
		Target:       viper.GetString("settings.target"),
		Layer:        viper.GetString("settings.layer"),
		Render:       true,
	}
}

// outputMode returns settings.out after checking it against allowed.
func outputMode(allowed ...string) (string, error) {
	out := strings.ToLower(viper.GetString("settings.out"))
	if !slices.Contains(allowed, out) {
		return "", &typemap.ConfigError{Field: "output mode", Value: out, Allowed: allowed}
	}
	return out, nil
}

// readInput reads the file named by args, or standard input for none or "-".
func readInput(cmd *cobra.Command, args []string) (source, text string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read input: %w", err)
	}
	return args[0], string(data), nil
}
