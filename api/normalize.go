package api

import (
	"fmt"

	"github.com/morikuni/failure/v2"
)

// Normalize recognizes the canonical {"mcpServers": {...}} shape and the
// alternate {"mcp": {"servers": {...}}} input shape and produces the
// canonical registry. The input mapping is never mutated; returned entries
// are deep copies. Normalizing an already-canonical registry is a no-op.
func Normalize(raw map[string]any) (Registry, error) {
	if servers, ok := raw[canonicalKey]; ok {
		return toRegistry(servers)
	}

	if mcp, ok := raw[alternateKey].(map[string]any); ok {
		if servers, ok := mcp[alternateSubKey]; ok {
			return toRegistry(servers)
		}
	}

	return nil, failure.New(ErrSchema,
		failure.Message(fmt.Sprintf("No recognized configuration key: expected %q or %q", canonicalKey, alternateKey+"."+alternateSubKey)),
	)
}

func toRegistry(servers any) (Registry, error) {
	m, ok := servers.(map[string]any)
	if !ok {
		return nil, failure.New(ErrSchema,
			failure.Message("Server registry must be a JSON object"),
		)
	}

	reg := make(Registry, len(m))
	for name, entry := range m {
		cfg, ok := entry.(map[string]any)
		if !ok {
			return nil, failure.New(ErrSchema,
				failure.Message(fmt.Sprintf("Server %q definition must be a JSON object", name)),
				failure.Context{"server": name},
			)
		}
		reg[name] = ServerConfig(deepCopyMap(cfg))
	}

	return reg, nil
}
