package api

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

const (
	// canonicalKey is the top-level key of the canonical configuration shape
	canonicalKey = "mcpServers"

	// alternateKey/alternateSubKey form the alternate input shape
	// {"mcp": {"servers": {...}}}, normalized away on ingestion
	alternateKey    = "mcp"
	alternateSubKey = "servers"
)

var validate = validator.New()

// ServerConfig describes one launchable MCP server. It is kept as a raw
// mapping so that keys beyond command/args pass through untouched.
type ServerConfig map[string]any

// Registry maps server names to their configurations
type Registry map[string]ServerConfig

// Config is the canonical top-level shape used for all persisted and
// returned data
type Config struct {
	MCPServers Registry `json:"mcpServers"`
}

// LaunchSpec is a typed view of the well-known ServerConfig fields
type LaunchSpec struct {
	Command string            `mapstructure:"command" validate:"required"`
	Args    []string          `mapstructure:"args"`
	Env     map[string]string `mapstructure:"env"`
}

// LaunchSpec decodes the well-known fields of a server configuration and
// validates that it describes a launchable command
func (c ServerConfig) LaunchSpec() (LaunchSpec, error) {
	var spec LaunchSpec
	if err := mapstructure.Decode(map[string]any(c), &spec); err != nil {
		return LaunchSpec{}, failure.Wrap(err)
	}
	if err := validate.Struct(spec); err != nil {
		return LaunchSpec{}, failure.New(ErrSchema,
			failure.Message("Server configuration does not describe a launchable command"),
			failure.Context{"error": err.Error()},
		)
	}
	return spec, nil
}

// Clone returns a deep copy of the server configuration
func (c ServerConfig) Clone() ServerConfig {
	return ServerConfig(deepCopyMap(map[string]any(c)))
}

// Names returns the server names in lexical order
func (r Registry) Names() []string {
	names := lo.Keys(r)
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the registry
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for name, cfg := range r {
		out[name] = cfg.Clone()
	}
	return out
}

// AsMap wraps the registry in the canonical top-level shape as a raw mapping
func (r Registry) AsMap() map[string]any {
	servers := make(map[string]any, len(r))
	for name, cfg := range r {
		servers[name] = map[string]any(cfg)
	}
	return map[string]any{canonicalKey: servers}
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return deepCopyMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}
