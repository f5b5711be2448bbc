package awssm

import (
	"fmt"
	"time"

	"github.com/jonwraymond/envloader/secret"
)

// Factory creates a Provider from a generic configuration map.
//
// Recognized keys: "region" (string), "timeout" (time.Duration or a string
// accepted by time.ParseDuration) and "max_attempts" (int).
func Factory(cfg map[string]any) (secret.Provider, error) {
	var c Config

	if v, ok := cfg["region"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("awssm: region must be a string, got %T", v)
		}
		c.Region = s
	}

	if v, ok := cfg["timeout"]; ok {
		switch t := v.(type) {
		case time.Duration:
			c.Timeout = t
		case string:
			d, err := time.ParseDuration(t)
			if err != nil {
				return nil, fmt.Errorf("awssm: invalid timeout: %w", err)
			}
			c.Timeout = d
		default:
			return nil, fmt.Errorf("awssm: timeout must be a duration, got %T", v)
		}
	}
	if c.Timeout < 0 {
		return nil, fmt.Errorf("awssm: timeout must not be negative, got %s", c.Timeout)
	}

	if v, ok := cfg["max_attempts"]; ok {
		n, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("awssm: max_attempts must be an int, got %T", v)
		}
		if n < 1 {
			return nil, fmt.Errorf("awssm: max_attempts must be at least 1, got %d", n)
		}
		c.MaxAttempts = n
	}

	return New(c), nil
}

// Register adds the aws_sm factory to reg.
func Register(reg *secret.Registry) error {
	return reg.Register(secret.AWSSecretsManagerMarker, Factory)
}
