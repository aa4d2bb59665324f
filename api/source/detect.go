package source

import (
	"net/url"
	"strings"
)

// DetectKind classifies a user-supplied configuration source string.
// The order matters: a literal JSON document is recognized before any URL or
// path heuristic so that pasted configs never hit the filesystem or network.
func DetectKind(input string) Kind {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return KindUnknown
	}

	if strings.HasPrefix(trimmed, "{") {
		return KindJSONLiteral
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return detectURLKind(trimmed)
	}

	// Local path heuristics: explicit relative/absolute prefixes, or a bare
	// name without a scheme separator that carries a file extension.
	if strings.HasPrefix(trimmed, "./") || strings.HasPrefix(trimmed, "../") || strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "~/") {
		return KindFilePath
	}
	if !strings.Contains(trimmed, ":") {
		if strings.HasSuffix(trimmed, ".json") || strings.HasSuffix(trimmed, ".md") {
			return KindFilePath
		}
		// owner/repo shorthand resolves through GitHub
		if parts := strings.Split(trimmed, "/"); len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			return KindGitHubRepo
		}
	}

	return KindUnknown
}

func detectURLKind(rawurl string) Kind {
	u, err := url.Parse(rawurl)
	if err != nil {
		return KindUnknown
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == "github.com" || host == "www.github.com":
		return KindGitHubRepo
	case host == "raw.githubusercontent.com" || host == "gist.githubusercontent.com":
		return KindRawURL
	}

	path := strings.ToLower(u.Path)
	if strings.HasSuffix(path, ".md") || strings.HasSuffix(path, ".json") || strings.HasSuffix(path, ".txt") {
		return KindRawURL
	}

	return KindWebPage
}
