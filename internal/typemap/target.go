package typemap

import (
	"log"
	"sort"

	"github.com/IDNLab/ddl-parser/internal/schema"
)

// Create modes understood by the renderer.
const (
	CreateModeReplace     = "replace"
	CreateModeCreate      = "create"
	CreateModeIfNotExists = "if_not_exists"
)

var createModes = []string{CreateModeReplace, CreateModeCreate, CreateModeIfNotExists}

// Override forces the target length of every column resolving to Type.
// With WhenSourceEmpty set it only fires when the source length is absent or
// zero. An empty Length yields a present but empty length.
type Override struct {
	Type            string `toml:"type" json:"type"`
	Length          string `toml:"length" json:"length"`
	WhenSourceEmpty bool   `toml:"when_source_empty" json:"when_source_empty,omitempty"`
}

func (o Override) matches(targetType string, source schema.Length) bool {
	if o.Type != targetType {
		return false
	}
	return !o.WhenSourceEmpty || source.IsZero()
}

// Target describes one target system: which source systems may feed it, its
// length overrides in evaluation order, and how its tables are created.
type Target struct {
	Name       string            `toml:"name" json:"name"`
	Sources    []string          `toml:"sources" json:"sources"`
	Overrides  []Override        `toml:"overrides" json:"overrides"`
	CreateMode string            `toml:"create_mode" json:"create_mode"`
	Suffixes   map[string]string `toml:"suffixes" json:"suffixes,omitempty"` // layer -> table name suffix
}

// Accepts reports whether source may be converted to this target. A target
// with no listed sources accepts any.
func (t *Target) Accepts(source string) bool {
	if len(t.Sources) == 0 {
		return true
	}
	for _, s := range t.Sources {
		if s == source {
			return true
		}
	}
	return false
}

// Layers returns the configured layer names, sorted.
func (t *Target) Layers() []string {
	out := make([]string, 0, len(t.Suffixes))
	for l := range t.Suffixes {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Suffix returns the table name suffix for a layer. The empty layer means no
// suffix.
func (t *Target) Suffix(layer string) (string, error) {
	if layer == "" {
		return "", nil
	}
	s, ok := t.Suffixes[layer]
	if !ok {
		return "", &ConfigError{Field: "layer", Value: layer, Allowed: t.Layers()}
	}
	return s, nil
}

// Catalog is the full mapping configuration: the type table plus the known
// targets. It is built once and only read afterwards.
type Catalog struct {
	Types   Table    `toml:"types" json:"types"`
	Targets []Target `toml:"targets" json:"targets"`
}

// Validate checks the type table and every target definition.
func (c *Catalog) Validate() error {
	if len(c.Types) == 0 {
		return &ConfigError{Field: "type table", Message: "no types defined"}
	}
	if err := c.Types.Validate(); err != nil {
		return err
	}

	known := make(map[string]bool)
	for _, canon := range c.Types.Canonicals() {
		known[canon] = true
	}
	names := make(map[string]bool)
	for _, t := range c.Targets {
		if t.Name == "" {
			return &ConfigError{Field: "target", Message: "target without a name"}
		}
		if names[t.Name] {
			return &ConfigError{Field: "target", Value: t.Name, Message: "defined twice"}
		}
		names[t.Name] = true

		switch t.CreateMode {
		case CreateModeReplace, CreateModeCreate, CreateModeIfNotExists:
		default:
			return &ConfigError{Field: t.Name + " create_mode", Value: t.CreateMode, Allowed: createModes}
		}
		for _, o := range t.Overrides {
			if !known[o.Type] && o.Type != Unmapped {
				return &ConfigError{Field: t.Name + " override", Value: o.Type, Message: "not a canonical type", Allowed: c.Types.Canonicals()}
			}
		}
	}
	return nil
}

func (c *Catalog) TargetNames() []string {
	out := make([]string, len(c.Targets))
	for i, t := range c.Targets {
		out[i] = t.Name
	}
	return out
}

func (c *Catalog) Target(name string) (*Target, error) {
	for i := range c.Targets {
		if c.Targets[i].Name == name {
			return &c.Targets[i], nil
		}
	}
	return nil, &ConfigError{Field: "target", Value: name, Allowed: c.TargetNames()}
}

// Converter resolves the target and checks that it accepts the source system
// before building the converter.
func (c *Catalog) Converter(target, sourceSystem string, logger *log.Logger) (*Converter, error) {
	t, err := c.Target(target)
	if err != nil {
		return nil, err
	}
	if !t.Accepts(sourceSystem) {
		return nil, &ConfigError{Field: "source system", Value: sourceSystem, Message: "not accepted by target " + t.Name, Allowed: t.Sources}
	}
	return NewConverter(c.Types, t, sourceSystem, logger), nil
}
