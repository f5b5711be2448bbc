package secret

import "context"

// Provider fetches secret payloads by reference.
//
// Name is the marker the provider is registered under. Implementations must
// be safe for concurrent use and must not log secret values.
type Provider interface {
	Name() string
	Resolve(ctx context.Context, ref string) (string, error)
	Close() error
}
