package typemap

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/IDNLab/ddl-parser/internal/schema"
)

// Unmapped is the target type of a column whose source type has no entry in
// the reverse map.
const Unmapped = "UNMAPPED"

// Converter maps columns of one source system onto one target. It holds no
// mutable state and may be shared between goroutines.
type Converter struct {
	target  *Target
	source  string
	reverse ReverseMap
	logger  *log.Logger
}

// NewConverter builds the reverse map for sourceSystem. A nil logger discards
// output.
func NewConverter(types Table, target *Target, sourceSystem string, logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	rev := BuildReverseMap(types, sourceSystem)
	if len(rev) == 0 {
		logger.Printf("[typemap] no type tokens for source system %q, every column will be %s", sourceSystem, Unmapped)
	}
	return &Converter{target: target, source: sourceSystem, reverse: rev, logger: logger}
}

func (c *Converter) Target() *Target {
	return c.target
}

func (c *Converter) SourceSystem() string {
	return c.source
}

// Convert maps every column. An empty input is an error so that "nothing
// parsed" is never reported as a successful empty conversion.
func (c *Converter) Convert(cols []schema.Column) ([]schema.ConvertedColumn, error) {
	if len(cols) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]schema.ConvertedColumn, len(cols))
	var unmapped []string
	for i, col := range cols {
		out[i] = c.ConvertColumn(col)
		if out[i].TargetType == Unmapped {
			unmapped = append(unmapped, fmt.Sprintf("%s(%s)", col.Name, col.SourceType))
		}
	}
	if len(unmapped) > 0 {
		c.logger.Printf("[typemap] %s -> %s: %d unmapped column(s): %s",
			c.source, c.target.Name, len(unmapped), strings.Join(unmapped, ", "))
	}
	return out, nil
}

// ConvertColumn resolves the canonical type with ReverseMap.Resolve, carries
// a non-zero source length over, then applies the target's overrides in order.
func (c *Converter) ConvertColumn(col schema.Column) schema.ConvertedColumn {
	out := schema.ConvertedColumn{
		Column:     col,
		TargetName: strings.ToUpper(col.Name),
		TargetType: Unmapped,
	}
	if canon, ok := c.reverse.Resolve(col.SourceType); ok {
		out.TargetType = canon
	}
	if !col.Length.IsZero() {
		out.TargetLength = col.Length
	}
	for _, o := range c.target.Overrides {
		if o.matches(out.TargetType, col.Length) {
			out.TargetLength = schema.NewLength(o.Length)
		}
	}
	return out
}
