package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/travelkit/travelkit/internal/logger"
	"github.com/travelkit/travelkit/internal/scraper"
	"github.com/travelkit/travelkit/internal/timeslot"
)

var flagListsDir string

func newAgendaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Export the agenda and exhibition pages as Markdown",
		Long: `Fetch the agenda and exhibition pages, write one Markdown file per
timeslot and per startup, and write the two overview lists.`,
		Args: cobra.NoArgs,
		RunE: runAgenda,
	}
	cmd.Flags().StringVar(&flagListsDir, "lists-dir", ".", "Directory for the overview lists")
	return cmd
}

func runAgenda(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client := scraper.NewAgendaClient(cfg.AgendaBaseURL, cfg.HTTPTimeout)

	agendaHTML, err := client.FetchPage(ctx, cfg.AgendaPage)
	if err != nil {
		return fmt.Errorf("fetching agenda: %w", err)
	}
	slots, err := scraper.ParseTimeslots(agendaHTML)
	if err != nil {
		return err
	}

	exhibitionHTML, err := client.FetchPage(ctx, cfg.ExhibitionPage)
	if err != nil {
		return fmt.Errorf("fetching exhibition: %w", err)
	}
	startups, err := scraper.ParseStartups(exhibitionHTML)
	if err != nil {
		return err
	}
	logger.Info("Parsed agenda", logger.Fields{"timeslots": len(slots), "startups": len(startups)})

	slotPaths, err := timeslot.WriteSlots(cfg.TimeslotsDir, slots)
	if err != nil {
		return err
	}
	startupPaths, err := timeslot.WriteStartups(cfg.StartupsDir, startups)
	if err != nil {
		return err
	}
	if err := timeslot.WriteLists(flagListsDir, slots, startups); err != nil {
		return err
	}

	files := make([]FileEntry, 0, len(slotPaths)+len(startupPaths))
	for _, p := range slotPaths {
		files = append(files, FileEntry{Path: p, Status: "timeslot"})
	}
	for _, p := range startupPaths {
		files = append(files, FileEntry{Path: p, Status: "startup"})
	}

	return report(cmd, &OutputResult{
		Command: "agenda",
		RanAt:   time.Now().UTC(),
		Message: fmt.Sprintf("Wrote %d timeslots and %d startups", len(slots), len(startups)),
		Count:   len(slots) + len(startups),
		Files:   files,
	})
}
