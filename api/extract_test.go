package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

// readTestFile reads a test file from the testdata directory
func readTestFile(t *testing.T, filename string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("Failed to read test file %s: %v", filename, err)
	}
	return string(content)
}

func TestExtractDirectParse(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     Registry
	}{
		{
			name:     "canonical schema",
			document: `{"mcpServers":{"git":{"command":"uvx","args":["mcp-server-git"]}}}`,
			want: Registry{
				"git": {
					"command": "uvx",
					"args":    []any{"mcp-server-git"},
				},
			},
		},
		{
			name:     "alternate schema is normalized",
			document: `{"mcp":{"servers":{"git":{"command":"uvx","args":["mcp-server-git"]}}}}`,
			want: Registry{
				"git": {
					"command": "uvx",
					"args":    []any{"mcp-server-git"},
				},
			},
		},
		{
			name:     "unknown keys pass through",
			document: `{"mcpServers":{"git":{"command":"uvx","args":[],"timeout":30,"disabled":false}}}`,
			want: Registry{
				"git": {
					"command":  "uvx",
					"args":     []any{},
					"timeout":  float64(30),
					"disabled": false,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.document)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractFencedBlock(t *testing.T) {
	content := readTestFile(t, "readme_fenced.md")

	want := Registry{
		"git": {
			"command": "uvx",
			"args":    []any{"mcp-server-git", "--repository", "path/to/git/repo"},
		},
	}

	got, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFencedBlockLenient(t *testing.T) {
	// Comment lines inside the JSON and a missing closing brace for a
	// nested object must still extract through the cleanup path
	content := readTestFile(t, "readme_fenced_lenient.md")

	want := Registry{
		"weather": {
			"command": "npx",
			"args":    []any{"-y", "@example/weather-mcp"},
			"env": map[string]any{
				"WEATHER_API_KEY": "YOUR_KEY",
			},
		},
	}

	got, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractServerPatterns(t *testing.T) {
	content := readTestFile(t, "readme_pattern.md")

	want := Registry{
		"filesystem": {
			"command": "npx",
			"args":    []string{"-y", "@modelcontextprotocol/server-filesystem", "/tmp"},
		},
		"fetch": {
			"command": "uvx",
			"args":    []string{"mcp-server-fetch"},
		},
	}

	got, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractBalancedBlock(t *testing.T) {
	content := readTestFile(t, "readme_balanced.md")

	want := Registry{
		"sqlite": {
			"command": "uvx",
			"args":    []any{"mcp-server-sqlite", "--db-path", "test.db"},
		},
	}

	got, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractStrategyOrdering(t *testing.T) {
	// A valid fenced block wins over per-server fragments elsewhere in the
	// document, even when those fragments would also match
	content := readTestFile(t, "readme_ordering.md")

	want := Registry{
		"fenced": {
			"command": "uvx",
			"args":    []any{"fenced-server"},
		},
	}

	got, err := Extract(content)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFailures(t *testing.T) {
	tests := []struct {
		name     string
		document string
		wantCode ErrorCode
	}{
		{
			name:     "empty document",
			document: "   \n\t",
			wantCode: ErrSchema,
		},
		{
			name:     "no configuration in document",
			document: readTestFile(t, "readme_none.md"),
			wantCode: ErrSchema,
		},
		{
			name:     "valid JSON without recognized key",
			document: `{"servers":{"git":{"command":"uvx"}}}`,
			wantCode: ErrSchema,
		},
		{
			name:     "configuration-like text but malformed",
			document: `Set "mcpServers" in your config: { "mcpServers": { "broken`,
			wantCode: ErrParse,
		},
		{
			name:     "canonical key with empty registry",
			document: `{"mcpServers":{}}`,
			wantCode: ErrSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.document)
			if err == nil {
				t.Fatal("Extract() expected error, got nil")
			}
			if !failure.Is(err, tt.wantCode) {
				t.Errorf("Extract() error code = %v, want %v (err: %v)", failure.CodeOf(err), tt.wantCode, err)
			}
		})
	}
}
