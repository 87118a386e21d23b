package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/travelkit/travelkit/internal/calendar"
	"github.com/travelkit/travelkit/internal/event"
	"github.com/travelkit/travelkit/internal/logger"
	"github.com/travelkit/travelkit/internal/scraper"
	"github.com/travelkit/travelkit/internal/storage"
)

// CombinedFile is the name of the calendar holding every card.
const CombinedFile = "all-events" + calendar.Extension

var flagCombined bool

func newICSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export event cards as calendar files and link them",
		Long: `Generate one .ics file per event card in the events page and point
each card's calendar link at its file. The page is rewritten in place.`,
		Args: cobra.NoArgs,
		RunE: runICS,
	}
	cmd.Flags().BoolVar(&flagCombined, "combined", false, "Also write one calendar containing every event")
	return cmd
}

func runICS(cmd *cobra.Command, args []string) error {
	f, err := os.Open(cfg.EventsHTML)
	if err != nil {
		return fmt.Errorf("opening events page: %w", err)
	}
	page, err := scraper.ParseEventPage(f)
	f.Close() // nolint:errcheck
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.ICSDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	now := time.Now()
	cards := page.Cards()
	hrefs := make([]string, len(cards))
	files := make([]FileEntry, 0, len(cards)+1)
	for i, card := range cards {
		name := calendar.FileName(card)
		if err := store.WriteFile(name, []byte(calendar.GenerateICS(card, calendar.NewUID(), now))); err != nil {
			return err
		}
		hrefs[i] = linkPath(cfg.EventsHTML, store.Path(name))
		files = append(files, FileEntry{Path: store.Path(name), Status: "written"})
	}

	if flagCombined && len(cards) > 0 {
		path, err := writeCombined(store, cards, now)
		if err != nil {
			return err
		}
		files = append(files, FileEntry{Path: path, Status: "written"})
	}

	out, err := page.RewriteICSLinks(hrefs)
	if err != nil {
		return err
	}
	if err := storage.WriteFile(cfg.EventsHTML, []byte(out)); err != nil {
		return err
	}
	logger.Info("Rewrote calendar links", logger.Fields{"page": cfg.EventsHTML, "cards": len(cards)})

	return report(cmd, &OutputResult{
		Command: "ics",
		RanAt:   time.Now().UTC(),
		Message: fmt.Sprintf("Generated %d calendar files in %s", len(cards), store.Dir()),
		Count:   len(cards),
		Files:   files,
	})
}

// writeCombined writes every card into one calendar, earliest first.
func writeCombined(store *storage.Storage, cards []*event.Card, now time.Time) (string, error) {
	sorted := append([]*event.Card(nil), cards...)
	sortCards(sorted)

	uids := make([]string, len(sorted))
	for i := range sorted {
		uids[i] = calendar.NewUID()
	}
	ics := calendar.GenerateBulkICS(sorted, uids, "49. Meeting", now)
	if err := store.WriteFile(CombinedFile, []byte(ics)); err != nil {
		return "", err
	}
	return store.Path(CombinedFile), nil
}

// linkPath returns target relative to the directory of page, with forward
// slashes, so the link works when the page is served.
func linkPath(page, target string) string {
	rel, err := filepath.Rel(filepath.Dir(page), target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}
