package fetcher

import "github.com/mcpup/mcpup/api/source"

// Fetcher is an interface for resolving a source reference into document text
type Fetcher interface {
	// Fetch resolves the raw source value into a document
	Fetch(value string) (source.Document, error)

	// BrowserURL generates a URL viewable in a web browser for the source
	BrowserURL(value string) string

	// Kind returns the source kind this fetcher handles
	Kind() source.Kind
}
