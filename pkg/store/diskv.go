// Package store is the key-value persistence collaborator: opaque string
// get/set/remove over a diskv-backed directory, plus change notification.
package store

import (
	"context"
	"errors"

	"github.com/peterbourgon/diskv/v3"
)

// Well-known keys. The month snapshot and the runtime settings live side by
// side in the same store.
const (
	KeyState    = "state"
	KeyEndpoint = "endpoint"
)

// Persistence is the opaque key-value contract the rest of the program talks
// to. A failed Set is reported but never fatal; in-memory state stays
// authoritative for the session.
type Persistence interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) (string, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (p *persistence) Set(key, value string) error {
	if key == "" {
		return errors.New("store: key required")
	}
	return p.d.Write(key, []byte(value))
}

func (p *persistence) Remove(key string) error {
	// Removing an absent key is fine.
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}
