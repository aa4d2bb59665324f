package api

import (
	"encoding/json"
	"testing"
)

func TestLenientCleanup(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "comment lines and trailing comments",
			in: `{
    "mcpServers": {
        // the git server
        "git": {
            "command": "uvx", // runner
            "args": ["mcp-server-git"]
        }
    }
}`,
		},
		{
			name: "trailing commas",
			in: `{
    "mcpServers": {
        "git": {
            "command": "uvx",
            "args": ["mcp-server-git",],
        },
    },
}`,
		},
		{
			name: "missing closing brace",
			in: `{
    "mcpServers": {
        "git": {
            "command": "uvx",
            "args": ["mcp-server-git"]
    }
}`,
		},
		{
			name: "missing opening brace",
			in: `    "mcpServers": {
        "git": {
            "command": "uvx",
            "args": ["mcp-server-git"]
        }
    }
}`,
		},
		{
			name: "slashes inside strings survive",
			in: `{
    "mcpServers": {
        "fs": {
            "command": "npx",
            "args": ["--root", "https://example.com/base"] // note the URL
        }
    }
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned := lenientCleanup(tt.in)
			if !json.Valid([]byte(cleaned)) {
				t.Fatalf("lenientCleanup() output is not valid JSON:\n%s", cleaned)
			}

			var raw map[string]any
			if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			reg, err := Normalize(raw)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if _, ok := reg["git"]; !ok {
				if _, ok := reg["fs"]; !ok {
					t.Errorf("cleaned document lost the server entry: %v", reg.Names())
				}
			}
		})
	}
}
