package sourceimpl

import (
	"net/url"
	"time"

	"github.com/morikuni/failure/v2"

	"github.com/mcpup/mcpup/api/source"
)

// WebPageFetcher resolves an arbitrary http(s) URL. HTML bodies are converted
// to Markdown before extraction so that documentation pages behave like READMEs.
type WebPageFetcher struct{}

func (f *WebPageFetcher) Fetch(value string) (source.Document, error) {
	u, err := url.Parse(value)
	if err != nil {
		return source.Document{}, failure.New(ErrInvalidSource,
			failure.Message("Invalid source URL"),
			failure.Context{"source": value},
		)
	}

	body, err := httpGetText(value)
	if err != nil {
		return source.Document{}, err
	}

	text := body
	if looksLikeHTML(body) {
		md, mdErr := toMarkdown(u, body)
		if mdErr == nil {
			text = md
		}
	}

	return source.Document{
		Ref:         source.Reference{Kind: source.KindWebPage, Value: value},
		Text:        text,
		ResolvedURL: value,
		FetchedAt:   time.Now(),
	}, nil
}

func (f *WebPageFetcher) BrowserURL(value string) string {
	return value
}

func (f *WebPageFetcher) Kind() source.Kind {
	return source.KindWebPage
}
