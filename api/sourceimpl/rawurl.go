package sourceimpl

import (
	"net/url"
	"time"

	"github.com/mcpup/mcpup/api/source"
)

// RawURLFetcher resolves a direct URL to raw text content
type RawURLFetcher struct{}

func (f *RawURLFetcher) Fetch(value string) (source.Document, error) {
	text, err := httpGetText(value)
	if err != nil {
		return source.Document{}, err
	}

	// Some "raw" endpoints still serve HTML error or landing pages
	if looksLikeHTML(text) {
		u, _ := url.Parse(value)
		if md, mdErr := toMarkdown(u, text); mdErr == nil {
			text = md
		}
	}

	return source.Document{
		Ref:         source.Reference{Kind: source.KindRawURL, Value: value},
		Text:        text,
		ResolvedURL: value,
		FetchedAt:   time.Now(),
	}, nil
}

func (f *RawURLFetcher) BrowserURL(value string) string {
	return value
}

func (f *RawURLFetcher) Kind() source.Kind {
	return source.KindRawURL
}
