package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/travelkit/travelkit/internal/config"
	"github.com/travelkit/travelkit/internal/logger"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitIssuesFound = 2
)

// ExitCodeError ends a command with a specific exit code after its output has
// been written.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

var (
	flagEnvFile string
	flagFormat  string
	flagVerbose bool

	cfg *config.Config
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "travelkit",
		Short: "Build travel route data and event material",
		Long: `A CLI tool that builds the travel-routes JSON document, keeps route
images on Wikimedia Commons, exports event cards as calendar files and
turns the agenda pages into Markdown timeslots.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Path to a .env file (default .env if present)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newBuildCmd(),
		newImagesCmd(),
		newICSCmd(),
		newAgendaCmd(),
		newProfilesCmd(),
	)
	return cmd
}

// setup loads the configuration and configures the default logger.
func setup(cmd *cobra.Command, args []string) error {
	if _, err := outputFormat(); err != nil {
		return err
	}

	loaded, err := config.Load(flagEnvFile)
	if err != nil {
		return err
	}
	cfg = loaded

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()).With(logger.Fields{"command": cmd.Name()}))
	logger.ResetMetrics()
	return nil
}

func outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// report writes result to the command's stdout in the selected format.
func report(cmd *cobra.Command, result *OutputResult) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	if flagVerbose {
		result.Metrics = logger.GetMetricsSnapshot()
	}
	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Execute runs the CLI. An interrupt cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	code := ExitCode(err)
	if code == ExitError {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
