package sourceimpl

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	html2md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/mackee/go-readability"
	"github.com/morikuni/failure/v2"
	"golang.org/x/net/html"

	"github.com/mcpup/mcpup/log"
)

const userAgent = "mcpup (+https://github.com/mcpup/mcpup)"

// httpGetText fetches a URL and returns the response body as a string.
// HTTP status codes >= 400 are reported as fetch failures.
func httpGetText(rawurl string) (string, error) {
	client := &http.Client{}

	req, err := http.NewRequest(http.MethodGet, rawurl, nil)
	if err != nil {
		return "", failure.Wrap(err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", failure.New(ErrFetchFailed,
			failure.Message("Failed to reach source URL"),
			failure.Context{
				"url":   rawurl,
				"error": err.Error(),
			},
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", failure.New(ErrFetchFailed,
			failure.Message(fmt.Sprintf("Source URL returned HTTP %d", resp.StatusCode)),
			failure.Context{
				"url":    rawurl,
				"status": resp.Status,
			},
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failure.Wrap(err)
	}

	return string(body), nil
}

// looksLikeHTML inspects the leading tokens of a document body and reports
// whether it is an HTML page rather than Markdown or JSON text
func looksLikeHTML(body string) bool {
	head := body
	if len(head) > 2048 {
		head = head[:2048]
	}

	z := html.NewTokenizer(strings.NewReader(head))
	for i := 0; i < 16; i++ {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.DoctypeToken:
			return true
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "html", "head", "body", "meta", "title", "div":
				return true
			}
		}
	}
	return false
}

// toMarkdown converts an HTML document to Markdown.
// Readability extraction is tried first to drop navigation chrome; the plain
// converter is the fallback when no article content is recognized.
func toMarkdown(pageURL *url.URL, body string) (string, error) {
	article, err := readability.Extract(body, readability.DefaultOptions())
	if err == nil && article.Root != nil {
		return readability.ToMarkdown(article.Root), nil
	}
	if err != nil {
		log.Debug("readability extraction failed, falling back to html2md", "error", err.Error())
	}

	host := ""
	if pageURL != nil {
		host = pageURL.Host
	}
	converter := html2md.NewConverter(host, true, &html2md.Options{})
	md, err := converter.ConvertString(body)
	if err != nil {
		return "", failure.Wrap(err)
	}
	return md, nil
}

// cleanupRepoURL converts a git-clonable URL to a browser-viewable https URL
func cleanupRepoURL(rawurl string) string {
	rawurl = strings.TrimSuffix(rawurl, ".git")
	rawurl = strings.TrimPrefix(rawurl, "git+")
	rawurl = strings.TrimPrefix(rawurl, "git://")

	if strings.HasPrefix(rawurl, "git@") {
		rawurl = strings.TrimPrefix(rawurl, "git@")
		rawurl = strings.Replace(rawurl, ":", "/", 1)
		rawurl = "https://" + rawurl
	}

	if strings.HasPrefix(rawurl, "ssh://") {
		rawurl = strings.TrimPrefix(rawurl, "ssh://")
		rawurl = strings.TrimPrefix(rawurl, "git@")
		rawurl = "https://" + rawurl
	}

	if !strings.HasPrefix(rawurl, "https://") && !strings.HasPrefix(rawurl, "http://") {
		rawurl = "https://" + rawurl
	}

	return strings.Split(rawurl, "#")[0]
}
