package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading.
var (
	// ErrEmptyName indicates prefix stripping left an empty output name.
	ErrEmptyName = errors.New("loader: empty output name")

	// ErrInvalidConfig indicates a Config failed validation.
	ErrInvalidConfig = errors.New("loader: invalid config")
)

// AbortError reports the resolution failure that stopped a load.
type AbortError struct {
	Name       string
	OutputName string
	Err        error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Name, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}
