package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/travelkit/travelkit/internal/logger"
)

const (
	UserAgent      = "travelkit/1.0 (+https://github.com/travelkit/travelkit)"
	DefaultTimeout = 10 * time.Second
)

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// get performs a GET request and returns the response when the status is 200.
// The caller closes the body.
func get(ctx context.Context, client *http.Client, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := client.Do(req)
	logger.RecordTiming("http.get", time.Since(start))
	if err != nil {
		logger.IncrCounter("http.errors")
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close() // nolint:errcheck
		logger.IncrCounter("http.errors")
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	logger.Debug("Fetched page", logger.Fields{"url": url, "status": resp.StatusCode})
	return resp, nil
}

// text returns the whitespace-trimmed text fragments below the selection,
// joined with sep. Empty fragments are dropped.
func text(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, sep)
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
