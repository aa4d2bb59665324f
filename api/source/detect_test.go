package source

import "testing"

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{
			name:  "literal JSON",
			input: `{"mcpServers": {"git": {"command": "uvx"}}}`,
			want:  KindJSONLiteral,
		},
		{
			name:  "literal JSON with leading whitespace",
			input: "\n  {\"mcpServers\": {}}",
			want:  KindJSONLiteral,
		},
		{
			name:  "github repository URL",
			input: "https://github.com/modelcontextprotocol/servers",
			want:  KindGitHubRepo,
		},
		{
			name:  "github tree URL",
			input: "https://github.com/modelcontextprotocol/servers/tree/main/src/git",
			want:  KindGitHubRepo,
		},
		{
			name:  "owner repo shorthand",
			input: "modelcontextprotocol/servers",
			want:  KindGitHubRepo,
		},
		{
			name:  "raw content URL",
			input: "https://raw.githubusercontent.com/owner/repo/main/README.md",
			want:  KindRawURL,
		},
		{
			name:  "markdown URL on another host",
			input: "https://example.com/docs/setup.md",
			want:  KindRawURL,
		},
		{
			name:  "web page URL",
			input: "https://example.com/docs/setup",
			want:  KindWebPage,
		},
		{
			name:  "relative path",
			input: "./server_config.json",
			want:  KindFilePath,
		},
		{
			name:  "absolute path",
			input: "/etc/mcp/server_config.json",
			want:  KindFilePath,
		},
		{
			name:  "home-relative path",
			input: "~/mcp/server_config.json",
			want:  KindFilePath,
		},
		{
			name:  "bare json filename",
			input: "server_config.json",
			want:  KindFilePath,
		},
		{
			name:  "empty input",
			input: "   ",
			want:  KindUnknown,
		},
		{
			name:  "unclassifiable input",
			input: "just-some-words",
			want:  KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectKind(tt.input); got != tt.want {
				t.Errorf("DetectKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
