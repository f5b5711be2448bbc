package loader

import (
	"fmt"
	"strings"
)

// Config controls classification and the failure policy.
type Config struct {
	// Pass lists names copied unchanged, never resolved.
	Pass []string

	// IgnoreMissing drops variables that fail to resolve instead of aborting.
	IgnoreMissing bool

	// Prefix restricts resolution to names starting with it and is stripped
	// from their output names. Only honored when HasPrefix is set.
	Prefix    string
	HasPrefix bool

	// Concurrency bounds parallel resolutions. Values below 2 resolve
	// sequentially.
	Concurrency int
}

// WithPrefix returns a copy of c with prefix set.
func (c Config) WithPrefix(prefix string) Config {
	c.Prefix = prefix
	c.HasPrefix = true
	return c
}

// Validate checks pass names and concurrency.
func (c Config) Validate() error {
	for _, name := range c.Pass {
		if name == "" {
			return fmt.Errorf("%w: empty pass-through name", ErrInvalidConfig)
		}
		if strings.ContainsRune(name, '=') {
			return fmt.Errorf("%w: pass-through name %q contains '='", ErrInvalidConfig, name)
		}
	}
	if c.HasPrefix && strings.ContainsRune(c.Prefix, '=') {
		return fmt.Errorf("%w: prefix %q contains '='", ErrInvalidConfig, c.Prefix)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative, got %d", ErrInvalidConfig, c.Concurrency)
	}
	return nil
}
