package sourceresolver

import (
	"github.com/mcpup/mcpup/api/fetcher"
	"github.com/mcpup/mcpup/api/source"
	"github.com/mcpup/mcpup/api/sourceimpl"
)

// Fetcher returns the appropriate fetcher for the given source Kind
func Fetcher(k source.Kind) fetcher.Fetcher {
	switch k {
	case source.KindJSONLiteral:
		return &sourceimpl.LiteralFetcher{}
	case source.KindFilePath:
		return &sourceimpl.FileFetcher{}
	case source.KindGitHubRepo:
		return &sourceimpl.GitHubFetcher{}
	case source.KindRawURL:
		return &sourceimpl.RawURLFetcher{}
	case source.KindWebPage:
		return &sourceimpl.WebPageFetcher{}
	default:
		return nil
	}
}
