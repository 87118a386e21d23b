package timeslot

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// NotAvailable marks fields without a value.
const NotAvailable = "n/a"

const (
	prefixTopic  = "Thema:"
	prefixAgenda = "Agenda:"
	prefixPeople = "Beteiligte Personen"
	prefixStart  = "Start:"
	prefixEnd    = "End:"
)

// Slot is one agenda slot.
type Slot struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Title string   `json:"title"`
	Meta  []string `json:"meta,omitempty"`
}

// Startup is one exhibiting startup.
type Startup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Entry is the content of one Markdown file.
type Entry struct {
	Title  string
	Topic  string
	Agenda string
	People []string // nil renders as n/a
	Start  string
	End    string
	Body   string
}

// Entry returns the file content for the slot.
func (s Slot) Entry() Entry {
	agenda := s.Start
	if s.End != "" {
		agenda = s.Start + " - " + s.End
	}
	return Entry{
		Title:  s.Title,
		Topic:  s.Title,
		Agenda: agenda,
		People: s.Meta,
		Start:  s.Start,
		End:    s.End,
	}
}

// SlotFromEntry converts a parsed slot file back into a Slot.
func SlotFromEntry(e Entry) Slot {
	return Slot{Start: e.Start, End: e.End, Title: e.Title, Meta: e.People}
}

// Entry returns the file content for the startup.
func (s Startup) Entry() Entry {
	return Entry{
		Title:  s.Name,
		Topic:  s.Name,
		Agenda: NotAvailable,
		Start:  NotAvailable,
		End:    NotAvailable,
		Body:   s.Description,
	}
}

// Render formats e as Markdown.
func Render(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", e.Title)
	fmt.Fprintf(&b, "%s %s\n", prefixTopic, e.Topic)
	fmt.Fprintf(&b, "%s %s\n", prefixAgenda, e.Agenda)
	if len(e.People) > 0 {
		b.WriteString(prefixPeople + ":\n")
		for _, p := range e.People {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	} else {
		fmt.Fprintf(&b, "%s: %s\n", prefixPeople, NotAvailable)
	}
	fmt.Fprintf(&b, "\n%s %s\n", prefixStart, e.Start)
	fmt.Fprintf(&b, "%s %s\n", prefixEnd, e.End)
	if e.Body != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Body)
	}
	return b.String()
}

// ErrMalformed is returned by Parse for files that do not follow the schema.
var ErrMalformed = errors.New("malformed timeslot file")

// Parse reads a Markdown file written by Render. Lines added to the
// participant list after rendering, such as profile annotations, are kept as
// participants.
func Parse(text string) (Entry, error) {
	lines := splitLines(text)
	var e Entry
	seen := map[string]bool{}

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) || !strings.HasPrefix(lines[i], "# ") {
		return e, fmt.Errorf("%w: missing heading", ErrMalformed)
	}
	e.Title = strings.TrimSpace(strings.TrimPrefix(lines[i], "# "))
	i++

	for ; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, prefixTopic):
			e.Topic = value(line, prefixTopic)
			seen[prefixTopic] = true
		case strings.HasPrefix(line, prefixAgenda):
			e.Agenda = value(line, prefixAgenda)
			seen[prefixAgenda] = true
		case strings.HasPrefix(line, prefixPeople):
			seen[prefixPeople] = true
			if value(line, prefixPeople+":") == NotAvailable {
				continue
			}
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1], "-") {
				i++
				e.People = append(e.People, bulletItem(lines[i]))
			}
		case strings.HasPrefix(line, prefixStart):
			e.Start = value(line, prefixStart)
			seen[prefixStart] = true
		case strings.HasPrefix(line, prefixEnd):
			e.End = value(line, prefixEnd)
			seen[prefixEnd] = true
			e.Body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			i = len(lines)
		}
	}

	for _, p := range []string{prefixTopic, prefixAgenda, prefixPeople, prefixStart, prefixEnd} {
		if !seen[p] {
			return e, fmt.Errorf("%w: missing %q line", ErrMalformed, p)
		}
	}
	return e, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}

func value(line, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, prefix))
}

// bulletItem returns the text of a "- item" line.
func bulletItem(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns text into a file name stem of lowercase ASCII letters, digits
// and dashes. Text without any of those yields "item".
func Slug(text string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(text), "-"), "-")
	if slug == "" {
		return "item"
	}
	return slug
}
