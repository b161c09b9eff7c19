package typemap

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a catalog from a TOML file:
//
//	[[types]]
//	canonical = "NUMBER"
//	  [types.sources]
//	  oracle = ["NUMBER", "INTEGER"]
//
//	[[targets]]
//	name = "snowflake"
//	sources = ["oracle"]
//	create_mode = "replace"
//	  [[targets.overrides]]
//	  type = "NUMBER"
//	  length = "38,0"
//	  when_source_empty = true
//
// A file without targets gets the built-in Snowflake target. Unknown keys are
// rejected. The result is validated.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read type catalog: %w", err)
	}
	return Load(string(data))
}

// Load parses a TOML catalog held in memory.
func Load(data string) (*Catalog, error) {
	var cat Catalog
	md, err := toml.Decode(data, &cat)
	if err != nil {
		return nil, fmt.Errorf("parse type catalog: %w", err)
	}
	if unknown := md.Undecoded(); len(unknown) > 0 {
		keys := make([]string, len(unknown))
		for i, k := range unknown {
			keys[i] = k.String()
		}
		return nil, &ConfigError{Field: "type catalog", Message: "unknown keys: " + strings.Join(keys, ", ")}
	}
	if len(cat.Targets) == 0 {
		cat.Targets = []Target{SnowflakeTarget()}
	}
	for i := range cat.Targets {
		if cat.Targets[i].CreateMode == "" {
			cat.Targets[i].CreateMode = CreateModeReplace
		}
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}
