package secret

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Outcome is the result of resolving one value: resolved when Err is nil,
// failed otherwise. A failed Outcome carries a *Failure.
type Outcome struct {
	Method Method
	Value  string
	Err    error
}

// Resolved reports whether the outcome carries a value.
func (o Outcome) Resolved() bool {
	return o.Err == nil
}

// Resolver dispatches values to the literal strategy or a registered Provider.
//
// Providers are registered before use; Resolve is safe for concurrent use
// once registration is finished.
type Resolver struct {
	providers map[string]Provider
}

// NewResolver creates a resolver serving providers.
func NewResolver(providers ...Provider) *Resolver {
	r := &Resolver{providers: make(map[string]Provider)}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds provider under its Name. Providers with an invalid marker
// name are ignored.
func (r *Resolver) Register(provider Provider) {
	if r == nil || provider == nil {
		return
	}
	if ValidateMarker(provider.Name()) != nil {
		return
	}
	if r.providers == nil {
		r.providers = make(map[string]Provider)
	}
	r.providers[provider.Name()] = provider
}

// Markers returns the secret-store markers served by r.
func (r *Resolver) Markers() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.providers))
	for name := range r.providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Parse classifies raw against the markers served by r.
func (r *Resolver) Parse(raw string) Reference {
	return ParseValue(raw, r.isStore)
}

func (r *Resolver) isStore(marker string) bool {
	if r == nil {
		return false
	}
	_, ok := r.providers[marker]
	return ok
}

// Resolve resolves raw into an Outcome. Every secret-store reference triggers
// exactly one provider call; nothing is cached.
func (r *Resolver) Resolve(ctx context.Context, raw string) Outcome {
	ref := r.Parse(raw)

	switch ref.Method {
	case MethodLiteral:
		return Outcome{Method: ref.Method, Value: ref.Body}
	case MethodRegular:
		return Outcome{Method: ref.Method, Value: raw}
	case MethodSecretStore:
		payload, err := r.providers[ref.Marker].Resolve(ctx, ref.Body)
		if err != nil {
			return Outcome{Method: ref.Method, Err: &Failure{
				Reason: ReasonLoad,
				Marker: ref.Marker,
				Ref:    ref.Body,
				Err:    err,
			}}
		}
		return Outcome{Method: ref.Method, Value: payload}
	default:
		return Outcome{Method: MethodUnknown, Err: &Failure{
			Reason: ReasonUnknownMethod,
			Marker: ref.Marker,
		}}
	}
}

// Close closes every provider and returns the joined errors.
func (r *Resolver) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, name := range r.Markers() {
		if err := r.providers[name].Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
