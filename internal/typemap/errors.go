package typemap

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when a conversion is asked to work on no columns.
var ErrEmptyInput = errors.New("no columns to convert")

// ConfigError reports a configuration value outside the accepted set, such as
// an unknown output mode, target or layer, or an inconsistent type table.
type ConfigError struct {
	Field   string
	Value   string
	Allowed []string
	Message string
}

func (e *ConfigError) Error() string {
	msg := "invalid " + e.Field
	if e.Value != "" {
		msg += " " + `"` + e.Value + `"`
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Allowed) > 0 {
		msg += " (must be one of: " + strings.Join(e.Allowed, ", ") + ")"
	}
	return msg
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
