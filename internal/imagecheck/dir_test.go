package imagecheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelkit/travelkit/internal/storage"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestUpdateDir(t *testing.T) {
	dir := t.TempDir()
	foreign := filepath.Join(dir, "chile", "route-1.json")
	clean := filepath.Join(dir, "route-2.json")
	list := filepath.Join(dir, "collection.json")
	other := filepath.Join(dir, "notes.txt")

	writeFile(t, foreign, `{"lodging":[{"name":"Hotel","images":[{"url":"https://cf.bstatic.com/a.jpg","caption":"Pool"}]}]}`)
	cleanContent := `{"stops":[{"photos":[{"url":"` + wikiURL + `","caption":"ok"}]}]}`
	writeFile(t, clean, cleanContent)
	writeFile(t, list, `[{"url":"https://example.com/x.jpg","caption":"x"}]`)
	writeFile(t, other, `{"images":[]}`)

	results, err := UpdateDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []FileResult{
		{Path: foreign, Status: StatusUpdated},
		{Path: list, Status: StatusSkipped},
		{Path: clean, Status: StatusUnchanged},
	}, results)

	var updated map[string]any
	require.NoError(t, storage.ReadJSON(foreign, &updated))
	img := updated["lodging"].([]any)[0].(map[string]any)["images"].([]any)[0].(map[string]any)
	assert.Equal(t, PlaceholderURL, img["url"])
	assert.Equal(t, "Pool", img["caption"])

	data, err := os.ReadFile(clean)
	require.NoError(t, err)
	assert.Equal(t, cleanContent, string(data), "unchanged files are not rewritten")

	data, err = os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, `{"images":[]}`, string(data), "non-JSON files are ignored")
}

func TestUpdateDir_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.json"), `{"images": [`)

	_, err := UpdateDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestUpdateDir_MissingDir(t *testing.T) {
	_, err := UpdateDir(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestAuditDir(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "a.json")
	writeFile(t, bad, `{"food":[{"images":[{"url":"https://example.com/f.jpg","source":"x"}]}]}`)
	writeFile(t, filepath.Join(dir, "b.json"), `{"food":[{"images":[{"url":"`+wikiURL+`","source":"x"}]}]}`)
	writeFile(t, filepath.Join(dir, "c.json"), `["not", "an", "object"]`)

	got, err := AuditDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []FileIssues{{
		Path:   bad,
		Issues: []Issue{{Location: "food[0]/images[0]", URL: "https://example.com/f.jpg"}},
	}}, got)
}
