package secret

import (
	"errors"
	"testing"
)

func TestRegistry_RegisterAndCreate(t *testing.T) {
	reg := NewRegistry()

	var gotCfg map[string]any
	if err := reg.Register("stub", func(cfg map[string]any) (Provider, error) {
		gotCfg = cfg
		return &stubProvider{name: "stub"}, nil
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	p, err := reg.Create("stub", map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p == nil || p.Name() != "stub" {
		t.Fatalf("unexpected provider: %#v", p)
	}
	if gotCfg["k"] != "v" {
		t.Fatalf("factory cfg = %v", gotCfg)
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register("stub", func(cfg map[string]any) (Provider, error) { return &stubProvider{name: "stub"}, nil })

	if err := reg.Register("stub", func(cfg map[string]any) (Provider, error) { return &stubProvider{name: "stub"}, nil }); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistry_RegisterReservedMarker(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(LiteralMarker, func(cfg map[string]any) (Provider, error) { return &stubProvider{name: "value"}, nil })
	if !errors.Is(err, ErrInvalidMarker) {
		t.Fatalf("expected ErrInvalidMarker, got %v", err)
	}
}

func TestRegistry_CreateUnknown(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Create("missing", nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRegistry_CreateNameMismatch(t *testing.T) {
	reg := NewRegistry()
	p := &stubProvider{name: "other"}
	_ = reg.Register("stub", func(cfg map[string]any) (Provider, error) { return p, nil })

	if _, err := reg.Create("stub", nil); err == nil {
		t.Fatalf("expected name mismatch error")
	}
	if !p.closed {
		t.Fatalf("expected mismatched provider to be closed")
	}
}

func TestRegistry_NewResolver(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register("a", func(cfg map[string]any) (Provider, error) {
		return &stubProvider{name: "a", values: map[string]string{"ref": cfg["v"].(string)}}, nil
	})
	_ = reg.Register("b", func(cfg map[string]any) (Provider, error) { return &stubProvider{name: "b"}, nil })

	r, err := reg.NewResolver(map[string]map[string]any{"a": {"v": "one"}})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if got := r.Markers(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Markers() = %v", got)
	}
}

func TestRegistry_NewResolverFactoryError(t *testing.T) {
	reg := NewRegistry()
	a := &stubProvider{name: "a"}
	_ = reg.Register("a", func(cfg map[string]any) (Provider, error) { return a, nil })
	_ = reg.Register("b", func(cfg map[string]any) (Provider, error) { return nil, errors.New("boom") })

	if _, err := reg.NewResolver(nil); err == nil {
		t.Fatalf("expected error")
	}
	if !a.closed {
		t.Fatalf("expected already-created providers to be closed")
	}
}
