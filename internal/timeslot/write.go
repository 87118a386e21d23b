package timeslot

import (
	"fmt"
	"strings"

	"github.com/travelkit/travelkit/internal/storage"
)

const (
	// AgendaListFile is the overview of all slots.
	AgendaListFile = "agenda_timeslots.md"
	// StartupListFile is the overview of all startups.
	StartupListFile = "startups.md"
)

// SlotFileName returns the file name of the slot at position n, counting
// from 1.
func SlotFileName(n int, s Slot) string {
	return fmt.Sprintf("%02d-%s.md", n, Slug(s.Title))
}

// WriteSlots writes one file per slot into dir and returns the paths.
func WriteSlots(dir string, slots []Slot) ([]string, error) {
	st, err := storage.New(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(slots))
	for i, s := range slots {
		name := SlotFileName(i+1, s)
		if err := st.WriteFile(name, []byte(Render(s.Entry()))); err != nil {
			return paths, err
		}
		paths = append(paths, st.Path(name))
	}
	return paths, nil
}

// WriteStartups writes one file per startup into dir and returns the paths.
// Startups whose names share a slug overwrite each other; the last one wins.
func WriteStartups(dir string, startups []Startup) ([]string, error) {
	st, err := storage.New(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(startups))
	for _, s := range startups {
		name := Slug(s.Name) + ".md"
		if err := st.WriteFile(name, []byte(Render(s.Entry()))); err != nil {
			return paths, err
		}
		paths = append(paths, st.Path(name))
	}
	return paths, nil
}

// RenderAgendaList formats the slot overview.
func RenderAgendaList(slots []Slot) string {
	var b strings.Builder
	for _, s := range slots {
		fmt.Fprintf(&b, "## %s UHR //\n", s.Start)
		fmt.Fprintf(&b, "- %s\n", s.Title)
		for _, m := range s.Meta {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStartupList formats the startup overview.
func RenderStartupList(startups []Startup) string {
	var b strings.Builder
	for _, s := range startups {
		fmt.Fprintf(&b, "## %s\n", s.Name)
		fmt.Fprintf(&b, "%s\n\n", s.Description)
	}
	return b.String()
}

// WriteLists writes both overview files into dir.
func WriteLists(dir string, slots []Slot, startups []Startup) error {
	st, err := storage.New(dir)
	if err != nil {
		return err
	}
	if err := st.WriteFile(AgendaListFile, []byte(RenderAgendaList(slots))); err != nil {
		return err
	}
	return st.WriteFile(StartupListFile, []byte(RenderStartupList(startups)))
}
