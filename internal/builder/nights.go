package builder

import (
	"math"
	"strings"
	"time"
)

// isoLayouts are the ISO-8601 date and datetime forms accepted for check-in and
// check-out values. Values without an offset are read as UTC.
var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

// parseISO parses an ISO-8601 date or datetime. A space is accepted in place
// of the T separator.
func parseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NightsBetween returns the number of whole days from start to end. Missing or
// unparseable values yield 0, and so does an end before the start.
func NightsBetween(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	begin, ok := parseISO(start)
	if !ok {
		return 0
	}
	finish, ok := parseISO(end)
	if !ok {
		return 0
	}
	days := math.Floor(finish.Sub(begin).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return int(days)
}
