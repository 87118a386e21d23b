package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/travelkit/travelkit/internal/imagecheck"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// FileEntry is one file touched by a command.
type FileEntry struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// OutputResult contains data to be output
type OutputResult struct {
	Command string                  `json:"command"`
	RanAt   time.Time               `json:"ran_at"`
	Message string                  `json:"message"`
	Count   int                     `json:"count"`
	Files   []FileEntry             `json:"files,omitempty"`
	Issues  []imagecheck.FileIssues `json:"issues,omitempty"`
	Metrics map[string]interface{}  `json:"metrics,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	for _, fi := range result.Issues {
		fmt.Fprintf(w, "Non-Wikimedia URLs in %s:\n", fi.Path)
		for _, issue := range fi.Issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
	}

	if verbose {
		for _, f := range result.Files {
			fmt.Fprintf(w, "  %s: %s\n", f.Status, f.Path)
		}
	}

	if result.Message != "" {
		fmt.Fprintln(w, result.Message)
	}

	if verbose && result.Metrics != nil {
		writeMetrics(w, result.Metrics)
	}
	return nil
}

func writeMetrics(w io.Writer, snapshot map[string]interface{}) {
	if counters, ok := snapshot["counters"].(map[string]int64); ok && len(counters) > 0 {
		fmt.Fprintln(w, "\nCounters:")
		for _, name := range sortedKeys(counters) {
			fmt.Fprintf(w, "  %s: %d\n", name, counters[name])
		}
	}
	if timings, ok := snapshot["timings"].(map[string]map[string]interface{}); ok && len(timings) > 0 {
		fmt.Fprintln(w, "\nTimings:")
		for _, name := range sortedKeys(timings) {
			t := timings[name]
			fmt.Fprintf(w, "  %s: count=%v avg=%v min=%v max=%v\n", name, t["count"], t["average"], t["min"], t["max"])
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
