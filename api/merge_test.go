package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeServers(t *testing.T) {
	tests := []struct {
		name     string
		existing Registry
		incoming Registry
		want     Registry
	}{
		{
			name: "disjoint names are unioned",
			existing: Registry{
				"a": {"command": "a-cmd"},
			},
			incoming: Registry{
				"b": {"command": "b-cmd"},
			},
			want: Registry{
				"a": {"command": "a-cmd"},
				"b": {"command": "b-cmd"},
			},
		},
		{
			name: "overlapping entry is overwritten wholesale",
			existing: Registry{
				"x": {"command": "a", "args": []any{"one"}},
			},
			incoming: Registry{
				"x": {"command": "b"},
			},
			want: Registry{
				// args from the existing entry must not be retained
				"x": {"command": "b"},
			},
		},
		{
			name:     "empty existing",
			existing: Registry{},
			incoming: Registry{"a": {"command": "a-cmd"}},
			want:     Registry{"a": {"command": "a-cmd"}},
		},
		{
			name:     "empty incoming preserves existing",
			existing: Registry{"a": {"command": "a-cmd"}},
			incoming: Registry{},
			want:     Registry{"a": {"command": "a-cmd"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existingBefore := tt.existing.Clone()
			incomingBefore := tt.incoming.Clone()

			got := MergeServers(tt.existing, tt.incoming)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeServers() mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(existingBefore, tt.existing); diff != "" {
				t.Errorf("MergeServers() mutated existing:\n%s", diff)
			}
			if diff := cmp.Diff(incomingBefore, tt.incoming); diff != "" {
				t.Errorf("MergeServers() mutated incoming:\n%s", diff)
			}
		})
	}
}

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name string
		dst  map[string]any
		src  map[string]any
		want map[string]any
	}{
		{
			name: "nested mappings merge key by key",
			dst: map[string]any{
				"mcpServers": map[string]any{
					"git": map[string]any{"command": "uvx", "args": []any{"mcp-server-git"}},
				},
			},
			src: map[string]any{
				"mcpServers": map[string]any{
					"git":   map[string]any{"command": "uv"},
					"fetch": map[string]any{"command": "uvx"},
				},
			},
			want: map[string]any{
				"mcpServers": map[string]any{
					"git":   map[string]any{"command": "uv", "args": []any{"mcp-server-git"}},
					"fetch": map[string]any{"command": "uvx"},
				},
			},
		},
		{
			name: "scalar overwrites mapping",
			dst:  map[string]any{"a": map[string]any{"b": 1}},
			src:  map[string]any{"a": "scalar"},
			want: map[string]any{"a": "scalar"},
		},
		{
			name: "arrays are replaced not concatenated",
			dst:  map[string]any{"args": []any{"one"}},
			src:  map[string]any{"args": []any{"two"}},
			want: map[string]any{"args": []any{"two"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(tt.dst, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DeepMerge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeProperty(t *testing.T) {
	// merge(A, B) contains every name in B with B's value, every name in A
	// not in B with A's value, and no other names
	a := Registry{
		"a":      {"command": "a-cmd"},
		"shared": {"command": "old", "args": []any{"keep?"}},
	}
	b := Registry{
		"b":      {"command": "b-cmd"},
		"shared": {"command": "new"},
	}

	got := MergeServers(a, b)

	if len(got) != 3 {
		t.Fatalf("MergeServers() produced %d names, want 3: %v", len(got), got.Names())
	}
	if diff := cmp.Diff(b["shared"], got["shared"]); diff != "" {
		t.Errorf("MergeServers() shared entry (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a["a"], got["a"]); diff != "" {
		t.Errorf("MergeServers() preserved entry (-want +got):\n%s", diff)
	}
}
