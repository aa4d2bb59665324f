package sourceimpl

import (
	"fmt"

	"github.com/mcpup/mcpup/api/cache"
	"github.com/mcpup/mcpup/api/fetcher"
	"github.com/mcpup/mcpup/api/source"
)

// FetchWithCache resolves a source through the given fetcher with cache support.
// Only remote sources are cached; literals and local files are always re-read.
// The forceUpdate parameter bypasses the cache and fetches fresh content.
func FetchWithCache(f fetcher.Fetcher, value string, forceUpdate bool) (source.Document, error) {
	if !f.Kind().IsRemote() {
		return f.Fetch(value)
	}

	cacheKey := fmt.Sprintf("%s:%s", f.Kind(), value)
	c := cache.New[source.Document]("fetch")

	return c.GetOrSet(cacheKey, func() (source.Document, error) {
		return f.Fetch(value)
	}, forceUpdate)
}
