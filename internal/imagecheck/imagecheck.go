// Package imagecheck keeps image references in route JSON files on Wikimedia
// Commons.
//
// An image is any object holding a "url" plus a "caption", "source" or
// "credit". Normalize swaps images hosted elsewhere for a placeholder;
// Audit reports them without touching anything.
package imagecheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/travelkit/travelkit/internal/record"
)

// PlaceholderURL is a public domain image on Wikimedia Commons.
const PlaceholderURL = "https://upload.wikimedia.org/wikipedia/commons/thumb/4/47/PNG_transparency_demonstration_1.png/800px-PNG_transparency_demonstration_1.png"

var wikimediaHosts = []string{"commons.wikimedia.org", "upload.wikimedia.org"}

// IsWikimedia reports whether url points at Wikimedia Commons.
func IsWikimedia(url string) bool {
	for _, host := range wikimediaHosts {
		if strings.Contains(url, host) {
			return true
		}
	}
	return false
}

// Placeholder returns a fresh placeholder image. A non-empty caption replaces
// the generic one.
func Placeholder(caption string) record.Record {
	p := record.Record{
		"url":     PlaceholderURL,
		"caption": "Placeholder image",
		"source":  "Wikimedia Commons",
		"license": "CC0",
	}
	if caption != "" {
		p["caption"] = caption
	}
	return p
}

// isImage reports whether m looks like an image rather than, say, a website
// link that happens to carry a url.
func isImage(m record.Record) bool {
	if !record.Has(m, "url") {
		return false
	}
	return record.Has(m, "caption") || record.Has(m, "source") || record.Has(m, "credit")
}

// replaceEntry returns the placeholder for an entry of an images or photos
// list that is not hosted on Wikimedia.
func replaceEntry(v any) (any, bool) {
	m, ok := v.(map[string]any)
	if !ok || IsWikimedia(record.String(m, "url")) {
		return v, false
	}
	caption := ""
	if record.Truthy(m["caption"]) {
		caption = record.String(m, "caption")
	}
	return Placeholder(caption), true
}

// Normalize walks v and replaces non-Wikimedia images with placeholders. Lists
// under "images" and "photos" are normalized entry by entry, and an empty
// "images" list gets a single placeholder. Objects are updated in place; the
// returned value must be used for the root. The bool reports any change.
func Normalize(v any) (any, bool) {
	switch t := v.(type) {
	case map[string]any:
		if isImage(t) && !IsWikimedia(record.String(t, "url")) {
			p, _ := replaceEntry(t)
			return p, true
		}
		changed := false
		for key, value := range t {
			list, isList := value.([]any)
			switch {
			case key == "images" && isList && len(list) == 0:
				t[key] = []any{Placeholder("")}
				changed = true
			case (key == "images" || key == "photos") && isList:
				for i, item := range list {
					if repl, ok := replaceEntry(item); ok {
						list[i] = repl
						changed = true
					}
				}
			default:
				if nv, ok := Normalize(value); ok {
					t[key] = nv
					changed = true
				}
			}
		}
		return t, changed
	case []any:
		changed := false
		for i, item := range t {
			if nv, ok := Normalize(item); ok {
				t[i] = nv
				changed = true
			}
		}
		return t, changed
	default:
		return v, false
	}
}

// Issue is an image that is not hosted on Wikimedia.
type Issue struct {
	Location string `json:"location"`
	URL      string `json:"url"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Location, i.URL)
}

// Audit lists every image in v whose url is not on Wikimedia. Locations use
// slash-separated keys with list indexes in brackets, e.g.
// "lodging[0]/images[1]". Keys are visited in sorted order.
func Audit(v any) []Issue {
	var issues []Issue
	audit(v, "", &issues)
	return issues
}

func audit(v any, location string, issues *[]Issue) {
	switch t := v.(type) {
	case map[string]any:
		if record.Has(t, "url") && (record.Has(t, "caption") || record.Has(t, "source")) {
			url := fmt.Sprint(t["url"])
			if s, ok := t["url"].(string); ok {
				url = s
			}
			if !IsWikimedia(url) {
				*issues = append(*issues, Issue{Location: location, URL: url})
			}
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			next := k
			if location != "" {
				next = location + "/" + k
			}
			audit(t[k], next, issues)
		}
	case []any:
		for i, item := range t {
			audit(item, fmt.Sprintf("%s[%d]", location, i), issues)
		}
	}
}
