package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/travelkit/travelkit/internal/event"
	"github.com/travelkit/travelkit/internal/logger"
)

// EventPage is a parsed meeting page whose card links can be rewritten.
type EventPage struct {
	doc   *goquery.Document
	cards []*event.Card
	links []*goquery.Selection
}

// ParseEventPage reads the meeting page and extracts its event cards. Cards
// without a readable time are skipped.
func ParseEventPage(r io.Reader) (*EventPage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	page := &EventPage{doc: doc}
	doc.Find("div.event-card").Each(func(i int, sel *goquery.Selection) {
		timeText := cardText(sel, "div.event-time")
		card, err := event.NewCard(
			cardText(sel, "h2.event-title"),
			cardText(sel, "div.event-speaker"),
			cardText(sel, "p.event-description"),
			timeText,
		)
		if err != nil {
			logger.Warn("Skipping event card", logger.Fields{"index": i, "time": timeText, "error": err.Error()})
			logger.IncrCounter("ics.skipped_cards")
			return
		}
		page.cards = append(page.cards, card)
		page.links = append(page.links, sel.Find("a.ics-link").First())
	})
	return page, nil
}

// cardText returns the text of the first match of selector inside the card
// with runs of whitespace collapsed.
func cardText(card *goquery.Selection, selector string) string {
	return strings.Join(strings.Fields(text(card.Find(selector).First(), " ")), " ")
}

// ParseEventCards returns the event cards of the meeting page.
func ParseEventCards(r io.Reader) ([]*event.Card, error) {
	page, err := ParseEventPage(r)
	if err != nil {
		return nil, err
	}
	return page.Cards(), nil
}

// Cards returns the parsed cards in page order.
func (p *EventPage) Cards() []*event.Card {
	return p.cards
}

// SetICSLink points the calendar link of card i at href. It reports false
// when the card has no calendar link.
func (p *EventPage) SetICSLink(i int, href string) bool {
	if i < 0 || i >= len(p.links) || p.links[i].Length() == 0 {
		return false
	}
	p.links[i].SetAttr("href", href)
	return true
}

// HTML renders the page including any rewritten links.
func (p *EventPage) HTML() (string, error) {
	out, err := p.doc.Html()
	if err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return out, nil
}

// RewriteICSLinks sets the calendar link of each card to hrefs[i] and returns
// the rendered page. Cards without a link are left unchanged. hrefs must not
// outnumber the cards.
func (p *EventPage) RewriteICSLinks(hrefs []string) (string, error) {
	if len(hrefs) > len(p.cards) {
		return "", fmt.Errorf("got %d calendar links for %d cards", len(hrefs), len(p.cards))
	}
	for i, href := range hrefs {
		if !p.SetICSLink(i, href) {
			logger.Warn("Event card has no calendar link", logger.Fields{"title": p.cards[i].Title})
		}
	}
	return p.HTML()
}
