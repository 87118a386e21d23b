package cli

import (
	"sort"
	"strings"

	"github.com/travelkit/travelkit/internal/event"
)

// sortCards orders cards chronologically. Cards starting at the same time are
// ordered by title.
func sortCards(cards []*event.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return compareByStart(cards[i], cards[j])
	})
}

// compareByStart reports whether card i should come before card j.
func compareByStart(i, j *event.Card) bool {
	if !i.Start.Equal(j.Start) {
		return i.Start.Before(j.Start)
	}
	return strings.ToLower(i.Title) < strings.ToLower(j.Title)
}
