// Package store implements the persisted MCP server configuration file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/morikuni/failure/v2"

	"github.com/mcpup/mcpup/api"
	"github.com/mcpup/mcpup/log"
)

// DefaultPath is the configuration store used when the caller names none
const DefaultPath = "server_config.json"

// Store reads and writes the on-disk server configuration
type Store struct {
	path string
}

// New creates a store for the given path; an empty path selects DefaultPath
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the store's file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted registry. A missing or unparsable file degrades
// gracefully to an empty registry so that a fresh install can proceed. A
// store written in the legacy {"mcp": {"servers": ...}} shape is normalized
// to the canonical shape on load.
func (s *Store) Load() (api.Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return api.Registry{}, nil
		}
		return nil, failure.New(api.ErrPersistence,
			failure.Message(fmt.Sprintf("Configuration store %s is unreadable", s.path)),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("configuration store is not valid JSON, starting from an empty registry",
			"path", s.path,
		)
		return api.Registry{}, nil
	}

	reg, err := api.Normalize(raw)
	if err != nil {
		log.Warn("configuration store has no recognized configuration key, starting from an empty registry",
			"path", s.path,
		)
		return api.Registry{}, nil
	}

	return reg, nil
}

// Save writes the registry in the canonical shape as UTF-8 JSON with
// 4-space indentation
func (s *Store) Save(reg api.Registry) error {
	data, err := json.MarshalIndent(api.Config{MCPServers: reg}, "", "    ")
	if err != nil {
		return failure.Wrap(err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return failure.New(api.ErrPersistence,
				failure.Message(fmt.Sprintf("Cannot create directory for configuration store %s", s.path)),
				failure.Context{"path": s.path, "error": err.Error()},
			)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return failure.New(api.ErrPersistence,
			failure.Message(fmt.Sprintf("Configuration store %s is unwritable", s.path)),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}

	return nil
}

// Apply merges incoming server entries into the store with whole-entry
// overwrite semantics and persists the result. The merged registry is
// returned for reporting.
func (s *Store) Apply(incoming api.Registry) (api.Registry, error) {
	existing, err := s.Load()
	if err != nil {
		return nil, err
	}

	merged := api.MergeServers(existing, incoming)
	if err := s.Save(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// InjectConfig deep-merges a fully formed, trusted configuration document
// into the store, recursively and key by key. Unlike Apply it operates on
// the raw document, so top-level keys beyond the registry survive. Use
// Apply for heuristically extracted data instead.
func (s *Store) InjectConfig(doc map[string]any) (api.Registry, error) {
	existing, err := s.loadRaw()
	if err != nil {
		return nil, err
	}

	merged := api.DeepMerge(existing, doc)

	data, err := json.MarshalIndent(merged, "", "    ")
	if err != nil {
		return nil, failure.Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return nil, failure.New(api.ErrPersistence,
			failure.Message(fmt.Sprintf("Configuration store %s is unwritable", s.path)),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}

	reg, err := api.Normalize(merged)
	if err != nil {
		return api.Registry{}, nil
	}
	return reg, nil
}

// loadRaw reads the store as a raw mapping, degrading to an empty canonical
// document when the file is missing or unparsable
func (s *Store) loadRaw() (map[string]any, error) {
	empty := map[string]any{"mcpServers": map[string]any{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		return nil, failure.New(api.ErrPersistence,
			failure.Message(fmt.Sprintf("Configuration store %s is unreadable", s.path)),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return empty, nil
	}
	return raw, nil
}
