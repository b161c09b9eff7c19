package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "ddl-parser",
	Short: "A CREATE TABLE parser and type converter",
	Long: `
  ____  ____  _       ____   _    ____  ____  _____ ____
 |  _ \|  _ \| |     |  _ \ / \  |  _ \/ ___|| ____|  _ \
 | | | | | | | |     | |_) / _ \ | |_) \___ \|  _| | |_) |
 | |_| | |_| | |___  |  __/ ___ \|  _ < ___) | |___|  _ <
 |____/|____/|_____| |_| /_/   \_\_| \_\____/|_____|_| \_\

DDL PARSER 🦉 - CREATE TABLE Metadata Extractor & Type Converter
`,
	SilenceUsage: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./ddl-parser.yaml)")
	flags.String("source-system", "", "Source system the DDL was written for (e.g. sql_server, oracle)")
	flags.String("target", "", "Target system to convert to")
	flags.String("layer", "", "Target layer selecting the table name suffix (e.g. l0, l1)")
	flags.String("out", "", "Output format: table, json or ddl")
	flags.String("typemap", "", "TOML type mapping catalog (default is the built-in Snowflake table)")

	viper.BindPFlag("settings.source_system", flags.Lookup("source-system"))
	viper.BindPFlag("settings.target", flags.Lookup("target"))
	viper.BindPFlag("settings.layer", flags.Lookup("layer"))
	viper.BindPFlag("settings.out", flags.Lookup("out"))
	viper.BindPFlag("settings.typemap", flags.Lookup("typemap"))

	// Set default for Viper (fallback if no config/flag)
	viper.SetDefault("settings.source_system", "sql_server")
	viper.SetDefault("settings.target", "snowflake")
	viper.SetDefault("settings.layer", "l0")
	viper.SetDefault("settings.out", outTable)
	viper.SetDefault("settings.workers", 4)
	viper.SetDefault("server.addr", ":8080")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("ddl-parser")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
