package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/travelkit/travelkit/internal/imagecheck"
)

var flagRoutesDir string

func newImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Keep route images on Wikimedia Commons",
	}
	cmd.PersistentFlags().StringVar(&flagRoutesDir, "dir", "", "Route JSON directory (default TRAVELKIT_ROUTES_DIR)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "update",
			Short: "Replace non-Wikimedia images with a placeholder",
			Args:  cobra.NoArgs,
			RunE:  runImagesUpdate,
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Report images that are not hosted on Wikimedia Commons",
			Long: `Report images that are not hosted on Wikimedia Commons.
Exits with status 2 when any remain.`,
			Args: cobra.NoArgs,
			RunE: runImagesValidate,
		},
	)
	return cmd
}

func routesDir() string {
	if flagRoutesDir != "" {
		return flagRoutesDir
	}
	return cfg.RoutesDir
}

func runImagesUpdate(cmd *cobra.Command, args []string) error {
	results, err := imagecheck.UpdateDir(routesDir())
	if err != nil {
		return err
	}

	files := make([]FileEntry, 0, len(results))
	updated := 0
	for _, r := range results {
		files = append(files, FileEntry{Path: r.Path, Status: string(r.Status)})
		if r.Status == imagecheck.StatusUpdated {
			updated++
		}
	}

	return report(cmd, &OutputResult{
		Command: "images update",
		RanAt:   time.Now().UTC(),
		Message: fmt.Sprintf("Updated %d of %d files", updated, len(results)),
		Count:   updated,
		Files:   files,
	})
}

func runImagesValidate(cmd *cobra.Command, args []string) error {
	found, err := imagecheck.AuditDir(routesDir())
	if err != nil {
		return err
	}

	total := 0
	for _, f := range found {
		total += len(f.Issues)
	}

	result := &OutputResult{
		Command: "images validate",
		RanAt:   time.Now().UTC(),
		Message: "All image URLs are from Wikimedia Commons.",
		Count:   total,
		Issues:  found,
	}
	if total > 0 {
		result.Message = fmt.Sprintf("Total: %d non-Wikimedia images in %d files", total, len(found))
	}
	if err := report(cmd, result); err != nil {
		return err
	}

	if total > 0 {
		return &ExitCodeError{Code: ExitIssuesFound, Err: errors.New("non-Wikimedia images found")}
	}
	return nil
}
