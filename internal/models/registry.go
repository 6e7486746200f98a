package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Registry is the JSON-backed model configuration store. It is loaded once
// per process and handed by reference into the handlers; extraction itself
// only ever sees a ModelConfig value, never the registry (keeps the pipeline
// pure and testable).
type Registry struct {
	mu       sync.RWMutex
	path     string
	models   map[string]ModelConfig
	validate *validator.Validate
}

// Load reads the registry file. A missing file yields an empty registry (the
// operator can PUT models in later); a malformed one is an error.
func Load(path string) (*Registry, error) {
	r := &Registry{
		path:     path,
		models:   map[string]ModelConfig{},
		validate: validator.New(),
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("read models file: %w", err)
	}
	if err := json.Unmarshal(b, &r.models); err != nil {
		return nil, fmt.Errorf("parse models file %s: %w", path, err)
	}
	return r, nil
}

// Models lists model ids, sorted. With activeOnly, models flagged
// "activo": false are hidden.
func (r *Registry) Models(activeOnly bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.models))
	for id, m := range r.models {
		if activeOnly && !m.Active() {
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Get returns the configuration of one model.
func (r *Registry) Get(id string) (ModelConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[id]
	return m, ok
}

// Put validates and stores a model configuration, then persists the whole
// registry to disk.
func (r *Registry) Put(id string, cfg ModelConfig) error {
	if id == "" {
		return fmt.Errorf("empty model id")
	}
	if err := r.Validate(cfg); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[id] = cfg
	return r.saveLocked()
}

// Validate checks a model configuration for structural completeness.
func (r *Registry) Validate(cfg ModelConfig) error {
	if err := r.validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid model config: %w", err)
	}
	return nil
}

// saveLocked writes the registry atomically (temp file + rename).
func (r *Registry) saveLocked() error {
	b, err := json.MarshalIndent(r.models, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
