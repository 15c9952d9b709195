package pagination

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("invalid pagination configuration")

// ConfigurationError reports a page size or series width that cannot produce a
// page window. It signals a programming error in the caller, not bad user input.
type ConfigurationError struct {
	Field string
	Value int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s must be >= 1, got %d", ErrConfiguration, e.Field, e.Value)
}

// Is lets errors.Is(err, ErrConfiguration) match any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
