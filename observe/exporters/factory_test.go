package exporters

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	prev := lookupEnv
	lookupEnv = func(k string) string { return env[k] }
	t.Cleanup(func() { lookupEnv = prev })
}

func TestNewTracingExporter_None(t *testing.T) {
	for _, name := range []string{"none", ""} {
		exp, err := NewTracingExporter(context.Background(), name, nil)
		if err != nil || exp != nil {
			t.Fatalf("NewTracingExporter(%q) = %v, %v; want nil, nil", name, exp, err)
		}
	}
}

func TestNewTracingExporter_Stdout(t *testing.T) {
	var buf bytes.Buffer
	exp, err := NewTracingExporter(context.Background(), "stdout", &buf)
	if err != nil {
		t.Fatalf("NewTracingExporter() error = %v", err)
	}
	if exp == nil {
		t.Fatalf("expected exporter")
	}
	_ = exp.Shutdown(context.Background())
}

func TestNewTracingExporter_OTLPRequiresEndpoint(t *testing.T) {
	withEnv(t, nil)

	_, err := NewTracingExporter(context.Background(), "otlp", nil)
	if !errors.Is(err, ErrEndpointNotConfigured) {
		t.Fatalf("expected ErrEndpointNotConfigured, got %v", err)
	}

	_, err = NewTracingExporter(context.Background(), "jaeger", nil)
	if !errors.Is(err, ErrEndpointNotConfigured) {
		t.Fatalf("expected ErrEndpointNotConfigured for jaeger, got %v", err)
	}
}

func TestNewTracingExporter_Unknown(t *testing.T) {
	if _, err := NewTracingExporter(context.Background(), "zipkin", nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewMetricsReader(t *testing.T) {
	withEnv(t, nil)

	r, err := NewMetricsReader(context.Background(), "none", nil)
	if err != nil || r != nil {
		t.Fatalf("none: got %v, %v", r, err)
	}

	r, err = NewMetricsReader(context.Background(), "stdout", &bytes.Buffer{})
	if err != nil || r == nil {
		t.Fatalf("stdout: got %v, %v", r, err)
	}
	_ = r.Shutdown(context.Background())

	if _, err := NewMetricsReader(context.Background(), "otlp", nil); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Fatalf("otlp: expected ErrEndpointNotConfigured, got %v", err)
	}

	if _, err := NewMetricsReader(context.Background(), "statsd", nil); err == nil {
		t.Fatalf("expected error for unknown exporter")
	}
}
