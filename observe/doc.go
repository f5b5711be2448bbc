// Package observe provides logging, tracing and metrics for variable
// resolution.
//
// An Observer bundles an OpenTelemetry tracer and meter with a JSON
// structured Logger. Middleware wraps a single resolution with a span named
// env.resolve.<method>, the env.resolve.* instruments and a debug log line.
// Variable values never reach any of the three: only names, methods and
// markers are recorded, and log fields with secret-like keys are redacted.
package observe
