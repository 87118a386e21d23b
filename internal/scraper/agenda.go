package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/travelkit/travelkit/internal/timeslot"
)

var (
	slotHeading = regexp.MustCompile(`^\d{1,2}:\d{2} UHR //`)
	slotTime    = regexp.MustCompile(`^\d{1,2}:\d{2}`)
	startupName = regexp.MustCompile(`(?i)(?:ÜBER|ABOUT)\s+(.+)`)
)

// AgendaClient reads pages from the WordPress REST API.
type AgendaClient struct {
	client  *http.Client
	baseURL string
}

// NewAgendaClient creates a client for baseURL, a format string with one %d
// verb for the page id.
func NewAgendaClient(baseURL string, timeout time.Duration) *AgendaClient {
	return &AgendaClient{
		client:  newHTTPClient(timeout),
		baseURL: baseURL,
	}
}

type wpPage struct {
	Content *struct {
		Rendered string `json:"rendered"`
	} `json:"content"`
}

// FetchPage returns the rendered HTML content of page id.
func (c *AgendaClient) FetchPage(ctx context.Context, id int) (string, error) {
	resp, err := get(ctx, c.client, fmt.Sprintf(c.baseURL, id), UserAgent)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", id, err)
	}
	defer resp.Body.Close() // nolint:errcheck

	var page wpPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return "", fmt.Errorf("page %d: decoding response: %w", id, err)
	}
	if page.Content == nil {
		return "", fmt.Errorf("page %d: response has no content", id)
	}
	return page.Content.Rendered, nil
}

// ParseTimeslots splits the agenda page into slots. A slot starts at every
// h2 heading like "10:00 UHR //" and ends at the next one. The first h2 after
// the heading is the slot title; further h2 and non-empty p elements become
// meta lines.
func ParseTimeslots(content string) ([]timeslot.Slot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// every element in document order
	all := doc.Find("*")
	var headings []int
	for i, n := range all.Nodes {
		if n.Data == "h2" && slotHeading.MatchString(text(all.Eq(i), "")) {
			headings = append(headings, i)
		}
	}

	slots := make([]timeslot.Slot, 0, len(headings))
	for h, idx := range headings {
		slot := timeslot.Slot{Start: slotTime.FindString(text(all.Eq(idx), ""))}
		stop := len(all.Nodes)
		if h+1 < len(headings) {
			stop = headings[h+1]
			slot.End = slotTime.FindString(text(all.Eq(stop), ""))
		}

		for j := idx + 1; j < stop; j++ {
			switch all.Nodes[j].Data {
			case "h2":
				t := text(all.Eq(j), " ")
				if slot.Title == "" {
					slot.Title = t
				} else {
					slot.Meta = append(slot.Meta, t)
				}
			case "p":
				if t := text(all.Eq(j), " "); t != "" {
					slot.Meta = append(slot.Meta, t)
				}
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// ParseStartups extracts the startups of the exhibition page. Each startup
// is a details element whose summary reads "ÜBER <name>" or "ABOUT <name>";
// its paragraphs form the description. Entries without a name or
// description are dropped.
func ParseStartups(content string) ([]timeslot.Startup, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var startups []timeslot.Startup
	doc.Find("details").Each(func(_ int, sel *goquery.Selection) {
		summary := sel.Find("summary").First()
		if summary.Length() == 0 {
			return
		}
		name := text(summary, " ")
		if m := startupName.FindStringSubmatch(name); m != nil {
			name = strings.TrimSpace(m[1])
		}

		var paragraphs []string
		sel.Find("p").Each(func(_ int, p *goquery.Selection) {
			if t := text(p, " "); t != "" {
				paragraphs = append(paragraphs, t)
			}
		})
		desc := strings.Join(paragraphs, " ")

		if name != "" && desc != "" {
			startups = append(startups, timeslot.Startup{Name: name, Description: desc})
		}
	})
	return startups, nil
}
