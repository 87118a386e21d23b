package event

import (
	"fmt"
	"strings"
	"time"
)

// cardLayouts are tried in order. Day, month and hour may have one or two
// digits.
var cardLayouts = []string{
	"2.1.2006 15:04",
	"2.1.06 15:04",
}

// qualifiers are dropped from the time part: "ca. 18:00", "ab 19:30".
var qualifiers = []string{"ca.", "ab"}

// ParseCardTime parses card time texts like "11.06.2025 | 18:00". The date
// and time are separated by "|"; approximate markers before the time are
// ignored. The result is a wall-clock time in UTC without zone semantics.
func ParseCardTime(text string) (time.Time, error) {
	datePart, timePart, ok := strings.Cut(text, "|")
	if !ok || strings.Contains(timePart, "|") {
		return time.Time{}, fmt.Errorf("card time %q: expected \"date | time\"", text)
	}

	datePart = strings.TrimSpace(datePart)
	for _, q := range qualifiers {
		timePart = strings.ReplaceAll(timePart, q, "")
	}
	timePart = strings.TrimSpace(timePart)

	value := datePart + " " + timePart
	for _, layout := range cardLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("card time %q: unrecognized date or time", text)
}
