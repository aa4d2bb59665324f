package sourceimpl

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/morikuni/failure/v2"

	"github.com/mcpup/mcpup/api/source"
)

// FileFetcher resolves a local filesystem path to its UTF-8 content
type FileFetcher struct{}

func (f *FileFetcher) Fetch(value string) (source.Document, error) {
	path := expandPath(value)

	data, err := os.ReadFile(path)
	if err != nil {
		return source.Document{}, failure.New(ErrFileUnreadable,
			failure.Message("Failed to read local configuration file"),
			failure.Context{
				"path":  path,
				"error": err.Error(),
			},
		)
	}

	return source.Document{
		Ref:       source.Reference{Kind: source.KindFilePath, Value: value},
		Text:      string(data),
		FetchedAt: time.Now(),
	}, nil
}

func (f *FileFetcher) BrowserURL(value string) string {
	abs, err := filepath.Abs(expandPath(value))
	if err != nil {
		return ""
	}
	return "file://" + abs
}

func (f *FileFetcher) Kind() source.Kind {
	return source.KindFilePath
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
