package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/travelkit/travelkit/internal/builder"
	"github.com/travelkit/travelkit/internal/catalog"
	"github.com/travelkit/travelkit/internal/logger"
	"github.com/travelkit/travelkit/internal/storage"
)

var flagOutput string

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the travel routes JSON document",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output path (default TRAVELKIT_OUTPUT)")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := cfg.OutputPath
	if flagOutput != "" {
		path = flagOutput
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	start := time.Now()
	doc := builder.New(cat).Build()
	logger.RecordTiming("build.total", time.Since(start))

	if err := storage.WriteJSON(path, doc); err != nil {
		return err
	}
	logger.Info("Wrote document", logger.Fields{"path": path, "routes": len(doc.Routes)})

	return report(cmd, &OutputResult{
		Command: "build",
		RanAt:   time.Now().UTC(),
		Message: fmt.Sprintf("Wrote %d routes to %s", len(doc.Routes), path),
		Count:   len(doc.Routes),
		Files:   []FileEntry{{Path: path, Status: "written"}},
	})
}
