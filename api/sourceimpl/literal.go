package sourceimpl

import (
	"time"

	"github.com/mcpup/mcpup/api/source"
)

// LiteralFetcher passes through a JSON document supplied directly by the caller
type LiteralFetcher struct{}

func (f *LiteralFetcher) Fetch(value string) (source.Document, error) {
	return source.Document{
		Ref:       source.Reference{Kind: source.KindJSONLiteral, Value: value},
		Text:      value,
		FetchedAt: time.Now(),
	}, nil
}

func (f *LiteralFetcher) BrowserURL(value string) string {
	return ""
}

func (f *LiteralFetcher) Kind() source.Kind {
	return source.KindJSONLiteral
}
