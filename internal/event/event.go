package event

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// Duration is the length assumed for every card.
const Duration = time.Hour

// Card is one event card of the meeting page.
type Card struct {
	Title       string    `json:"title"`
	Speaker     string    `json:"speaker"`
	Description string    `json:"description"`
	TimeText    string    `json:"time_text"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// NewCard parses timeText and returns a card scheduled from that time for
// Duration.
func NewCard(title, speaker, description, timeText string) (*Card, error) {
	start, err := ParseCardTime(timeText)
	if err != nil {
		return nil, err
	}
	return &Card{
		Title:       title,
		Speaker:     speaker,
		Description: description,
		TimeText:    timeText,
		Start:       start,
		End:         start.Add(Duration),
	}, nil
}

// Key identifies a card by start time and title. Cards repeated on a page
// share the same key.
func (c *Card) Key() string {
	h := sha1.New()
	h.Write([]byte(c.Start.Format("200601021504") + "|" + c.Title))
	return fmt.Sprintf("%x", h.Sum(nil))
}
