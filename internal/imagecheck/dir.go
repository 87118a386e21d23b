package imagecheck

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/travelkit/travelkit/internal/logger"
	"github.com/travelkit/travelkit/internal/storage"
)

// Status is the outcome of normalizing one file.
type Status string

const (
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusSkipped   Status = "skipped"
)

// FileResult is the outcome for one JSON file.
type FileResult struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
}

// FileIssues lists the non-Wikimedia images of one file.
type FileIssues struct {
	Path   string  `json:"path"`
	Issues []Issue `json:"issues"`
}

// jsonFiles returns every *.json file below dir in lexical order.
func jsonFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// UpdateDir normalizes every JSON file below dir. Files whose root is not an
// object are skipped; only files that changed are rewritten.
func UpdateDir(dir string) ([]FileResult, error) {
	files, err := jsonFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, 0, len(files))
	for _, path := range files {
		var data any
		if err := storage.ReadJSON(path, &data); err != nil {
			return results, err
		}

		root, ok := data.(map[string]any)
		if !ok {
			logger.Info("Skipping file, root is not an object", logger.Fields{"path": path})
			results = append(results, FileResult{Path: path, Status: StatusSkipped})
			logger.IncrCounter("images.skipped")
			continue
		}

		normalized, changed := Normalize(root)
		if !changed {
			logger.Debug("No changes needed", logger.Fields{"path": path})
			results = append(results, FileResult{Path: path, Status: StatusUnchanged})
			continue
		}
		if err := storage.WriteJSON(path, normalized); err != nil {
			return results, err
		}
		logger.Info("Updated images", logger.Fields{"path": path})
		logger.IncrCounter("images.updated")
		results = append(results, FileResult{Path: path, Status: StatusUpdated})
	}
	return results, nil
}

// AuditDir reports the non-Wikimedia images of every JSON file below dir.
// Files without issues and files whose root is not an object are left out.
func AuditDir(dir string) ([]FileIssues, error) {
	files, err := jsonFiles(dir)
	if err != nil {
		return nil, err
	}

	var out []FileIssues
	for _, path := range files {
		var data any
		if err := storage.ReadJSON(path, &data); err != nil {
			return out, err
		}
		if _, ok := data.(map[string]any); !ok {
			continue
		}
		if issues := Audit(data); len(issues) > 0 {
			out = append(out, FileIssues{Path: path, Issues: issues})
		}
	}
	return out, nil
}
