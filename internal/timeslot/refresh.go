package timeslot

import (
	"context"
	"slices"
	"strings"

	"github.com/travelkit/travelkit/internal/logger"
)

// ProfileSource looks up a short public profile for a person. An empty
// result means nothing was found.
type ProfileSource interface {
	Lookup(ctx context.Context, name string) (string, error)
}

// ProfileFunc adapts a function to ProfileSource.
type ProfileFunc func(ctx context.Context, name string) (string, error)

// Lookup calls f.
func (f ProfileFunc) Lookup(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

// Refresh replaces the profile line of every name/organization pair in the
// participant section with a looked-up snippet. Without a snippet the
// existing profile line is kept. Lookup errors count as no data.
func Refresh(ctx context.Context, lines []string, src ProfileSource) []string {
	out := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		line := lines[i]
		out = append(out, line)
		i++
		if !strings.HasPrefix(strings.TrimSpace(line), prefixPeople) {
			continue
		}

		for i < len(lines) && strings.HasPrefix(lines[i], "-") {
			raw := lines[i]
			item := bulletItem(raw)
			out = append(out, raw)
			i++
			if isAnnotation(raw) || strings.EqualFold(item, NotAvailable) || IsRole(item) || !IsLikelyName(item) {
				continue
			}
			if i >= len(lines) || !strings.HasPrefix(lines[i], "-") || isAnnotation(lines[i]) {
				continue
			}

			// organization
			out = append(out, lines[i])
			i++

			var oldProfile, reason string
			if i < len(lines) && strings.HasPrefix(lines[i], profilePrefix) {
				oldProfile = lines[i]
				i++
			}
			if i < len(lines) && strings.HasPrefix(lines[i], reasonPrefix) {
				reason = lines[i]
				i++
			}

			if snippet := lookup(ctx, src, item); snippet != "" {
				out = append(out, profilePrefix+" "+snippet)
			} else if oldProfile != "" {
				out = append(out, oldProfile)
			}
			if reason != "" {
				out = append(out, reason)
			}
		}
	}
	return out
}

func lookup(ctx context.Context, src ProfileSource, name string) string {
	snippet, err := src.Lookup(ctx, name)
	if err != nil {
		logger.Warn("Profile lookup failed", logger.Fields{"name": name, "error": err.Error()})
		logger.IncrCounter("profiles.lookup_errors")
		return ""
	}
	if snippet == "" {
		logger.IncrCounter("profiles.lookup_misses")
		return ""
	}
	logger.IncrCounter("profiles.lookup_hits")
	return snippet
}

// RefreshFile refreshes the Markdown file at path in place. It reports whether
// the file changed.
func RefreshFile(ctx context.Context, path string, src ProfileSource) (bool, error) {
	lines, err := readLines(path)
	if err != nil {
		return false, err
	}
	refreshed := Refresh(ctx, lines, src)
	if slices.Equal(lines, refreshed) {
		return false, nil
	}
	return true, writeLines(path, refreshed)
}

// RefreshDir refreshes every Markdown file directly inside dir and returns
// the number of files changed. It stops early when ctx is cancelled.
func RefreshDir(ctx context.Context, dir string, src ProfileSource) (int, error) {
	files, err := markdownFiles(dir)
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		ok, err := RefreshFile(ctx, path, src)
		if err != nil {
			return changed, err
		}
		if ok {
			changed++
			logger.Info("Refreshed profiles", logger.Fields{"path": path})
		}
	}
	return changed, nil
}
