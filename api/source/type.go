package source

// Kind represents the kind of configuration source supplied by the user
type Kind string

// String returns the string representation of the Kind
func (k Kind) String() string {
	return string(k)
}

// KindFromString creates a Kind from a string
func KindFromString(s string) Kind {
	return Kind(s)
}

// IsRemote returns true if resolving the source requires network access
func (k Kind) IsRemote() bool {
	switch k {
	case KindGitHubRepo, KindRawURL, KindWebPage:
		return true
	default:
		return false
	}
}

// IsStructured returns true if the source text is expected to already be
// well-formed JSON rather than free-form documentation
func (k Kind) IsStructured() bool {
	switch k {
	case KindJSONLiteral, KindFilePath:
		return true
	default:
		return false
	}
}

const (
	// KindJSONLiteral is a literal JSON document passed directly by the caller
	KindJSONLiteral Kind = "json-literal"
	// KindFilePath is a path to a local JSON file
	KindFilePath Kind = "file"
	// KindGitHubRepo is a GitHub repository URL or owner/repo shorthand
	KindGitHubRepo Kind = "github.com"
	// KindRawURL is a direct URL to raw text content (raw READMEs, .json, .md)
	KindRawURL Kind = "raw-url"
	// KindWebPage is any other http(s) URL serving an HTML document
	KindWebPage Kind = "web-page"
	// KindUnknown is a source that could not be classified
	KindUnknown Kind = ""
)
