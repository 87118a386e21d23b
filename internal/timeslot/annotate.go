package timeslot

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/travelkit/travelkit/internal/logger"
	"github.com/travelkit/travelkit/internal/storage"
)

// Roles are the session tags that appear between participants.
var Roles = map[string]bool{
	"PANEL":                   true,
	"KEYNOTE":                 true,
	"FIRESIDE CHAT":           true,
	"LIVE PODCAST":            true,
	"PITCH":                   true,
	"IMPULS":                  true,
	"GASTGEBER":               true,
	"PAUSE":                   true,
	"MASTERCLASS":             true,
	"MASTERCLASS RAUM 1":      true,
	"MASTERCLASS RAUM 2":      true,
	"ROUNDTABLE":              true,
	"ROUNDTABLE RAUM 9":       true,
	"ROUNDTABLE RAUM 10 & 11": true,
}

// Categories are the conversation topics suggested in annotations.
var Categories = []string{
	"corporate foresight at Miele",
	"early adopter",
	"VC",
	"smart money",
	"start-up cooperations",
}

const (
	profilePrefix = "- Profil:"
	reasonPrefix  = "- Grund:"
)

// IsRole reports whether item is a session tag.
func IsRole(item string) bool {
	return Roles[strings.ToUpper(item)]
}

// IsLikelyName reports whether text looks like a person's name: two to four
// words, each starting with a letter.
func IsLikelyName(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Category picks the suggested topic for name. The choice is stable across
// runs.
func Category(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return Categories[h.Sum32()%uint32(len(Categories))]
}

// ProfileLine returns the generated profile line for a participant.
func ProfileLine(name, org string) string {
	return fmt.Sprintf("%s %s von %s bringt Erfahrung in %s.", profilePrefix, name, org, Category(name))
}

// ReasonLine returns the generated conversation hint for a participant.
func ReasonLine(name string) string {
	return fmt.Sprintf("%s Sprechen Sie mit %s, um mehr über %s zu erfahren.", reasonPrefix, name, Category(name))
}

// isAnnotation reports whether line is a generated profile or reason line.
func isAnnotation(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, profilePrefix) || strings.HasPrefix(line, reasonPrefix)
}

// Annotate adds profile and reason lines after every name/organization pair
// in the participant section. Role tags reset the pairing; the section ends
// at the first line that is blank or not a bullet. Pairs that already carry a
// profile line are left alone.
func Annotate(lines []string) []string {
	out := make([]string, 0, len(lines))
	inSection := false
	lastName := ""

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		out = append(out, line)

		if strings.HasPrefix(stripped, prefixPeople) {
			inSection = true
			lastName = ""
			continue
		}
		if !inSection {
			continue
		}
		if stripped == "" || !strings.HasPrefix(stripped, "-") {
			inSection = false
			lastName = ""
			continue
		}

		if isAnnotation(stripped) {
			continue
		}
		item := bulletItem(stripped)
		if IsRole(item) {
			lastName = ""
			continue
		}
		if lastName == "" {
			if IsLikelyName(item) {
				lastName = item
			}
			continue
		}

		annotated := i+1 < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i+1]), profilePrefix)
		if !annotated {
			out = append(out, ProfileLine(lastName, item), ReasonLine(lastName))
		}
		lastName = ""
	}
	return out
}

// AnnotateFile annotates the Markdown file at path in place. It reports
// whether the file changed.
func AnnotateFile(path string) (bool, error) {
	lines, err := readLines(path)
	if err != nil {
		return false, err
	}
	annotated := Annotate(lines)
	if len(annotated) == len(lines) {
		return false, nil
	}
	return true, writeLines(path, annotated)
}

// AnnotateDir annotates every Markdown file directly inside dir and returns
// the number of files changed.
func AnnotateDir(dir string) (int, error) {
	files, err := markdownFiles(dir)
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, path := range files {
		ok, err := AnnotateFile(path)
		if err != nil {
			return changed, err
		}
		if ok {
			changed++
			logger.Info("Annotated participants", logger.Fields{"path": path})
		}
	}
	logger.AddCounter("profiles.annotated_files", int64(changed))
	return changed, nil
}

func markdownFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return splitLines(string(data)), nil
}

func writeLines(path string, lines []string) error {
	return storage.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"))
}
