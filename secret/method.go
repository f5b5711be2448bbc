package secret

import (
	"fmt"
	"strings"
)

// Method is the loading strategy selected for a value.
type Method int

const (
	// MethodRegular keeps the value unchanged.
	MethodRegular Method = iota
	// MethodLiteral strips the literal marker and keeps the rest verbatim.
	MethodLiteral
	// MethodSecretStore fetches the value from a Provider.
	MethodSecretStore
	// MethodUnknown is a "::" value whose marker is not recognized.
	MethodUnknown
)

// String returns the string representation of the method.
func (m Method) String() string {
	switch m {
	case MethodRegular:
		return "regular"
	case MethodLiteral:
		return "literal"
	case MethodSecretStore:
		return "secret_store"
	case MethodUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

const (
	// Separator splits a marker from the rest of the value.
	Separator = "::"

	// LiteralMarker selects MethodLiteral. It is checked before any provider.
	LiteralMarker = "value"

	// AWSSecretsManagerMarker is the marker of the AWS Secrets Manager provider.
	AWSSecretsManagerMarker = "aws_sm"
)

// Reference is a value split into its method, marker and body.
type Reference struct {
	Method Method
	Marker string
	Body   string
}

// ParseValue classifies raw. isStore reports whether a marker names a
// secret-store provider; a nil isStore recognizes none.
//
// Only the first "::" is significant: "value::a::b" is the literal "a::b".
func ParseValue(raw string, isStore func(marker string) bool) Reference {
	marker, body, ok := strings.Cut(raw, Separator)
	if !ok {
		return Reference{Method: MethodRegular, Body: raw}
	}

	switch {
	case marker == LiteralMarker:
		return Reference{Method: MethodLiteral, Marker: marker, Body: body}
	case isStore != nil && isStore(marker):
		return Reference{Method: MethodSecretStore, Marker: marker, Body: body}
	default:
		return Reference{Method: MethodUnknown, Marker: marker, Body: body}
	}
}

// ValidateMarker checks that name can be used as a provider marker.
func ValidateMarker(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidMarker)
	case name == LiteralMarker:
		return fmt.Errorf("%w: %q is reserved", ErrInvalidMarker, name)
	case strings.Contains(name, Separator):
		return fmt.Errorf("%w: %q contains %q", ErrInvalidMarker, name, Separator)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidMarker, name)
	}
	return nil
}
