package sim

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel matched by every setup-time configuration failure.
var ErrConfig = errors.New("invalid world configuration")

// ConfigError reports a layout request that the grid cannot satisfy.
// No world is built when it is returned.
type ConfigError struct {
	Field     string
	Requested int
	Available int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: requested %d, only %d available", e.Field, e.Requested, e.Available)
}

// Is reports ErrConfig as matching so callers can use errors.Is.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
