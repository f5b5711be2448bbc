// Package secret resolves environment variable values that carry a load
// marker.
//
// A value is classified by the token before its first "::":
//   - value::<literal>     the literal is used verbatim
//   - <marker>::<ref>      ref is fetched from the Provider registered as marker
//   - no "::" at all       the value is a regular value and is kept as-is
//   - any other marker     the value has an unknown load method
//
// The AWS Secrets Manager provider (see package awssm) registers under the
// marker "aws_sm", so MYAPP_DB=aws_sm::prod/db/password resolves to the
// SecretString of the secret prod/db/password.
//
// Resolve never panics and never returns a bare error: every call yields an
// Outcome, and failures carry a *Failure that matches ErrUnknownMethod or
// ErrLoad with errors.Is.
package secret
