package sourceimpl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    repoRef
		wantErr bool
	}{
		{
			name:  "repository root URL",
			value: "https://github.com/owner/repo",
			want:  repoRef{Owner: "owner", Repo: "repo"},
		},
		{
			name:  "trailing slash",
			value: "https://github.com/owner/repo/",
			want:  repoRef{Owner: "owner", Repo: "repo"},
		},
		{
			name:  "tree URL with subpath",
			value: "https://github.com/owner/repo/tree/main/src/git",
			want:  repoRef{Owner: "owner", Repo: "repo", Branch: "main", Subpath: "src/git"},
		},
		{
			name:  "tree URL without subpath",
			value: "https://github.com/owner/repo/tree/develop",
			want:  repoRef{Owner: "owner", Repo: "repo", Branch: "develop"},
		},
		{
			name:  "owner repo shorthand",
			value: "owner/repo",
			want:  repoRef{Owner: "owner", Repo: "repo"},
		},
		{
			name:  "git clone URL",
			value: "git@github.com:owner/repo.git",
			want:  repoRef{Owner: "owner", Repo: "repo"},
		},
		{
			name:  "query parameters stripped",
			value: "https://github.com/owner/repo?tab=readme-ov-file",
			want:  repoRef{Owner: "owner", Repo: "repo"},
		},
		{
			name:    "missing repo segment",
			value:   "https://github.com/owner",
			wantErr: true,
		},
		{
			name:    "non-github URL",
			value:   "https://gitlab.com/owner/repo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRepoRef(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseRepoRef() expected error, got nil")
				}
				if !failure.Is(err, ErrInvalidSource) {
					t.Errorf("parseRepoRef() error code = %v, want %v", failure.CodeOf(err), ErrInvalidSource)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRepoRef() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseRepoRef() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadmeCandidates(t *testing.T) {
	tests := []struct {
		name string
		ref  repoRef
		want []string
	}{
		{
			name: "default branch fallback order",
			ref:  repoRef{Owner: "o", Repo: "r"},
			want: []string{
				"https://raw.githubusercontent.com/o/r/main/README.md",
				"https://raw.githubusercontent.com/o/r/master/README.md",
			},
		},
		{
			name: "explicit branch",
			ref:  repoRef{Owner: "o", Repo: "r", Branch: "develop"},
			want: []string{
				"https://raw.githubusercontent.com/o/r/develop/README.md",
			},
		},
		{
			name: "branch with subpath",
			ref:  repoRef{Owner: "o", Repo: "r", Branch: "main", Subpath: "src/git"},
			want: []string{
				"https://raw.githubusercontent.com/o/r/main/src/git/README.md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ref.readmeCandidates()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readmeCandidates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGitHubBrowserURL(t *testing.T) {
	f := &GitHubFetcher{}

	tests := []struct {
		value string
		want  string
	}{
		{"owner/repo", "https://github.com/owner/repo"},
		{"https://github.com/owner/repo/tree/main/src", "https://github.com/owner/repo/tree/main/src"},
		{"https://github.com/owner", ""},
	}

	for _, tt := range tests {
		if got := f.BrowserURL(tt.value); got != tt.want {
			t.Errorf("BrowserURL(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
