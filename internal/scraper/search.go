package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// SearchUserAgent is sent to the search page, which rejects unknown
	// clients.
	SearchUserAgent = "Mozilla/5.0"
	// MaxSnippetWords caps the length of a profile snippet.
	MaxSnippetWords = 30
)

// SearchClient looks up profile snippets on an HTML search results page.
type SearchClient struct {
	client  *http.Client
	baseURL string
}

// NewSearchClient creates a client for the search page at baseURL.
func NewSearchClient(baseURL string, timeout time.Duration) *SearchClient {
	return &SearchClient{
		client:  newHTTPClient(timeout),
		baseURL: baseURL,
	}
}

// Lookup searches for the person's LinkedIn profile and returns the first
// result snippet, shortened to MaxSnippetWords words. It returns "" when the
// page has no result.
func (c *SearchClient) Lookup(ctx context.Context, name string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing search URL: %w", err)
	}
	q := u.Query()
	q.Set("q", name+" linkedin")
	u.RawQuery = q.Encode()

	resp, err := get(ctx, c.client, u.String(), SearchUserAgent)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() // nolint:errcheck

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	return firstSnippet(doc), nil
}

func firstSnippet(doc *goquery.Document) string {
	sel := doc.Find("a.result__snippet").First()
	if sel.Length() == 0 {
		return ""
	}
	return shorten(text(sel, " "), MaxSnippetWords)
}

// shorten collapses whitespace and keeps at most max words, marking cut text
// with "...".
func shorten(s string, max int) string {
	words := strings.Fields(s)
	if len(words) > max {
		return strings.Join(words[:max], " ") + "..."
	}
	return strings.Join(words, " ")
}
