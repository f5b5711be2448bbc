package secret

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolution failures.
var (
	// ErrUnknownMethod indicates a value uses "::" syntax with a marker that
	// is neither the literal marker nor a registered provider.
	ErrUnknownMethod = errors.New("secret: unknown load method")

	// ErrLoad indicates a provider failed to return a payload.
	ErrLoad = errors.New("secret: load failed")

	// ErrInvalidMarker indicates a provider or factory name cannot be used as
	// a marker.
	ErrInvalidMarker = errors.New("secret: invalid marker")
)

// Reason classifies a Failure.
type Reason int

const (
	// ReasonUnknownMethod means the marker was not recognized.
	ReasonUnknownMethod Reason = iota + 1
	// ReasonLoad means the provider lookup failed.
	ReasonLoad
)

// String returns the string representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonUnknownMethod:
		return "unknown_method"
	case ReasonLoad:
		return "load_error"
	default:
		return "unknown"
	}
}

// Failure describes why a value could not be resolved.
type Failure struct {
	Reason Reason
	Marker string
	Ref    string
	Err    error
}

func (f *Failure) Error() string {
	switch f.Reason {
	case ReasonUnknownMethod:
		return fmt.Sprintf("unknown load method %q", f.Marker)
	case ReasonLoad:
		if f.Err == nil {
			return fmt.Sprintf("failed to load secret %q via %s", f.Ref, f.Marker)
		}
		return fmt.Sprintf("failed to load secret %q via %s: %v", f.Ref, f.Marker, f.Err)
	default:
		return "secret: resolution failed"
	}
}

// Unwrap exposes the reason sentinel and the provider error.
func (f *Failure) Unwrap() []error {
	var errs []error
	switch f.Reason {
	case ReasonUnknownMethod:
		errs = append(errs, ErrUnknownMethod)
	case ReasonLoad:
		errs = append(errs, ErrLoad)
	}
	if f.Err != nil {
		errs = append(errs, f.Err)
	}
	return errs
}
