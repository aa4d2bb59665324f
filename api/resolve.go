package api

import (
	"github.com/morikuni/failure/v2"

	"github.com/mcpup/mcpup/api/source"
	"github.com/mcpup/mcpup/api/sourceimpl"
	"github.com/mcpup/mcpup/api/sourceresolver"
	"github.com/mcpup/mcpup/log"
)

// GetConfig resolves a configuration source (literal JSON, local path,
// GitHub repository, or URL) into document text and extracts the server
// registry from it. The forceUpdate parameter bypasses the fetch cache.
func GetConfig(input string, forceUpdate bool) (Registry, error) {
	doc, err := ResolveDocument(input, forceUpdate)
	if err != nil {
		return nil, err
	}
	return Extract(doc.Text)
}

// GetServerConfig extracts the configuration of one named server from a
// configuration source
func GetServerConfig(input, serverName string, forceUpdate bool) (Registry, error) {
	reg, err := GetConfig(input, forceUpdate)
	if err != nil {
		return nil, err
	}
	return FilterServer(reg, serverName)
}

// ResolveDocument turns a user-supplied source reference into document text
// without extracting anything from it
func ResolveDocument(input string, forceUpdate bool) (source.Document, error) {
	ref := source.NewReference(input)
	if ref.Kind == source.KindUnknown {
		return source.Document{}, failure.New(ErrFetch,
			failure.Message("Unrecognized configuration source: expected JSON, a file path, a GitHub repository, or a URL"),
			failure.Context{"source": input},
		)
	}

	f := sourceresolver.Fetcher(ref.Kind)
	if f == nil {
		return source.Document{}, failure.New(ErrFetch,
			failure.Message("No fetcher available for source kind"),
			failure.Context{"kind": ref.Kind.String()},
		)
	}

	log.Debug("resolving configuration source", "kind", ref.Kind.String())

	doc, err := sourceimpl.FetchWithCache(f, ref.Value, forceUpdate)
	if err != nil {
		return source.Document{}, err
	}
	return doc, nil
}

// BrowserURL returns a browser-viewable URL for a source reference, or an
// empty string when none exists (literals, unreadable inputs)
func BrowserURL(input string) string {
	ref := source.NewReference(input)
	f := sourceresolver.Fetcher(ref.Kind)
	if f == nil {
		return ""
	}
	return f.BrowserURL(ref.Value)
}
