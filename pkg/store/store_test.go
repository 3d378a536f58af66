package store

import (
	"testing"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }
func (c *testConfig) Endpoint() string { return "" }
func (c *testConfig) Employee() string { return "" }

func TestGetSetRemove(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := p.Get(KeyState); ok {
		t.Fatalf("expected missing key")
	}
	if err := p.Set(KeyState, `{"year":2025}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := p.Get(KeyState)
	if !ok || got != `{"year":2025}` {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	if err := p.Set(KeyState, "updated"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if got, _ := p.Get(KeyState); got != "updated" {
		t.Fatalf("Get after overwrite = %q", got)
	}

	if err := p.Remove(KeyState); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := p.Get(KeyState); ok {
		t.Fatalf("expected key removed")
	}

	// Removing an absent key is not an error.
	if err := p.Remove("never-set"); err != nil {
		t.Fatalf("Remove absent: %v", err)
	}
}

func TestSetEmptyKey(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := p.Set("", "x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(&testConfig{}); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}
