package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no usable provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// LoadError reports a data source that could not be read or decoded.
type LoadError struct {
	Provider string
	Source   string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: load %s: %v", e.Provider, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: load: %v", e.Provider, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// AsLoadError attempts to unwrap an error into a LoadError.
func AsLoadError(err error) (*LoadError, bool) {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr, true
	}
	return nil, false
}
