// Package calendar renders meeting cards as iCalendar files.
package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/travelkit/travelkit/internal/event"
)

const (
	// ProdID identifies the generator in every calendar.
	ProdID = "-//Universal Home//49. Meeting//DE"
	// UIDDomain is appended to the random part of every UID.
	UIDDomain = "universal-home.de"
	// Extension is the file extension of generated calendars.
	Extension = ".ics"

	maxSlugLen = 60
)

// NewUID returns a random event UID.
func NewUID() string {
	return uuid.NewString() + "@" + UIDDomain
}

// GenerateICS renders a calendar holding the single event card. Start and end
// are floating local times; DTSTAMP and CREATED use now in UTC.
func GenerateICS(card *event.Card, uid string, now time.Time) string {
	var ics strings.Builder
	writeHeader(&ics, "")
	writeEvent(&ics, card, uid, now)
	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// GenerateBulkICS renders one calendar with an event per card. uids must hold
// one UID per card. An empty card list yields an empty string.
func GenerateBulkICS(cards []*event.Card, uids []string, name string, now time.Time) string {
	if len(cards) == 0 {
		return ""
	}

	var ics strings.Builder
	writeHeader(&ics, name)
	for i, card := range cards {
		writeEvent(&ics, card, uids[i], now)
	}
	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeHeader(ics *strings.Builder, name string) {
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:" + ProdID + "\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if name != "" {
		ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(name)))
	}
}

func writeEvent(ics *strings.Builder, card *event.Card, uid string, now time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatLocalTime(card.Start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatLocalTime(card.End)))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))
	ics.WriteString(fmt.Sprintf("UID:%s\r\n", uid))
	ics.WriteString(fmt.Sprintf("CREATED:%s\r\n", formatICSTime(now)))
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(card.Description)))
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(card.Title)))
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats t in UTC as an iCalendar datetime.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatLocalTime formats the wall clock of t without a zone designator.
func formatLocalTime(t time.Time) string {
	return t.Format("20060102T150405")
}

// escapeICS escapes text values according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// FileName returns the calendar file name for card: the start time as
// YYYYMMDDHHMM followed by the title, reduced to a slug of at most 60
// characters.
func FileName(card *event.Card) string {
	return slugify(card.Start.Format("200601021504")+"-"+card.Title) + Extension
}

func slugify(text string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(text), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return slug
}
