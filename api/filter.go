package api

import (
	"fmt"
	"strings"

	"github.com/morikuni/failure/v2"
)

// FilterServer reduces a registry to the single named server. It returns a
// one-entry registry, or a ServerNotFound failure naming the missing server.
func FilterServer(reg Registry, name string) (Registry, error) {
	cfg, ok := reg[name]
	if !ok {
		return nil, failure.New(ErrServerNotFound,
			failure.Message(fmt.Sprintf("Server %q not found in the configuration", name)),
			failure.Context{
				"server":    name,
				"available": strings.Join(reg.Names(), ", "),
			},
		)
	}

	return Registry{name: cfg}, nil
}
