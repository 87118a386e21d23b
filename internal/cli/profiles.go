package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/travelkit/travelkit/internal/scraper"
	"github.com/travelkit/travelkit/internal/timeslot"
)

var flagTimeslotsDir string

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Add or refresh participant profiles in timeslot files",
	}
	cmd.PersistentFlags().StringVar(&flagTimeslotsDir, "dir", "", "Timeslot directory (default TRAVELKIT_TIMESLOTS_DIR)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "annotate",
			Short: "Add generated profile and reason lines to participants",
			Args:  cobra.NoArgs,
			RunE:  runProfilesAnnotate,
		},
		&cobra.Command{
			Use:   "refresh",
			Short: "Replace profile lines with a web search snippet",
			Args:  cobra.NoArgs,
			RunE:  runProfilesRefresh,
		},
	)
	return cmd
}

func timeslotsDir() string {
	if flagTimeslotsDir != "" {
		return flagTimeslotsDir
	}
	return cfg.TimeslotsDir
}

func runProfilesAnnotate(cmd *cobra.Command, args []string) error {
	dir := timeslotsDir()
	n, err := timeslot.AnnotateDir(dir)
	if err != nil {
		return err
	}
	return report(cmd, &OutputResult{
		Command: "profiles annotate",
		RanAt:   time.Now().UTC(),
		Message: fmt.Sprintf("Annotated %d files in %s", n, dir),
		Count:   n,
	})
}

func runProfilesRefresh(cmd *cobra.Command, args []string) error {
	dir := timeslotsDir()
	src := scraper.NewSearchClient(cfg.SearchURL, cfg.HTTPTimeout)
	n, err := timeslot.RefreshDir(cmd.Context(), dir, src)
	if err != nil {
		return err
	}
	return report(cmd, &OutputResult{
		Command: "profiles refresh",
		RanAt:   time.Now().UTC(),
		Message: fmt.Sprintf("Refreshed %d files in %s", n, dir),
		Count:   n,
	})
}
