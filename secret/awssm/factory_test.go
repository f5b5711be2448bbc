package awssm

import (
	"testing"
	"time"

	"github.com/jonwraymond/envloader/secret"
)

func TestFactory(t *testing.T) {
	tests := []struct {
		name    string
		cfg     map[string]any
		want    Config
		wantErr bool
	}{
		{name: "nil config", cfg: nil, want: Config{}},
		{name: "region", cfg: map[string]any{"region": "us-west-2"}, want: Config{Region: "us-west-2"}},
		{name: "timeout duration", cfg: map[string]any{"timeout": 2 * time.Second}, want: Config{Timeout: 2 * time.Second}},
		{name: "timeout string", cfg: map[string]any{"timeout": "500ms"}, want: Config{Timeout: 500 * time.Millisecond}},
		{name: "attempts", cfg: map[string]any{"max_attempts": 3}, want: Config{MaxAttempts: 3}},
		{name: "bad region", cfg: map[string]any{"region": 1}, wantErr: true},
		{name: "bad timeout", cfg: map[string]any{"timeout": "soon"}, wantErr: true},
		{name: "negative timeout", cfg: map[string]any{"timeout": -time.Second}, wantErr: true},
		{name: "zero attempts", cfg: map[string]any{"max_attempts": 0}, wantErr: true},
		{name: "attempts type", cfg: map[string]any{"max_attempts": "3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Factory(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Factory() error = %v", err)
			}
			got := p.(*Provider).cfg
			if got != tt.want {
				t.Fatalf("config = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	reg := secret.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := Register(reg); err == nil {
		t.Fatalf("second Register() should fail")
	}

	res, err := reg.NewResolver(map[string]map[string]any{
		secret.AWSSecretsManagerMarker: {"region": "eu-central-1"},
	})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	defer res.Close()

	markers := res.Markers()
	if len(markers) != 1 || markers[0] != secret.AWSSecretsManagerMarker {
		t.Fatalf("Markers() = %v", markers)
	}
}
