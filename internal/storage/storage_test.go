package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSON_Formatting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.json")

	doc := map[string]any{
		"title": "Chile & Rapa Nui – Rundreise",
		"tags":  []string{"Küste", "🌋"},
	}
	if err := WriteJSON(path, doc); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	for _, want := range []string{"Chile & Rapa Nui – Rundreise", "Küste", "🌋", "\n  \"tags\": [\n    \"Küste\""} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, `\u0026`) {
		t.Errorf("output escapes HTML characters:\n%s", got)
	}
}

func TestWriteJSON_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	if err := WriteJSON(path, map[string]any{"routes": []int{1, 2, 3}, "old": true}); err != nil {
		t.Fatal(err)
	}
	if err := WriteJSON(path, map[string]any{"routes": []int{1}}); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := ReadJSON(path, &got); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if _, ok := got["old"]; ok {
		t.Errorf("stale key survived rewrite: %v", got)
	}
	if len(got["routes"].([]any)) != 1 {
		t.Errorf("routes = %v, want one entry", got["routes"])
	}
}

func TestWriteJSON_EncodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")

	err := WriteJSON(path, map[string]any{"f": func() {}})
	if err == nil {
		t.Fatal("WriteJSON() expected error for unsupported value")
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("file written despite encode error")
	}
}

func TestReadJSON_Errors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "missing.json"), "reading"},
		{"malformed", broken, "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			err := ReadJSON(tt.path, &v)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ReadJSON() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestStorage_WritesBelowDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ics")
	s, err := New(base)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		t.Fatalf("New() did not create %s", base)
	}

	if err := s.WriteFile("event.ics", []byte("BEGIN:VCALENDAR\r\n")); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteJSON("meta.json", map[string]int{"count": 1}); err != nil {
		t.Fatal(err)
	}

	if got := s.Path("event.ics"); got != filepath.Join(base, "event.ics") {
		t.Errorf("Path() = %q", got)
	}
	data, err := os.ReadFile(filepath.Join(base, "meta.json"))
	if err != nil {
		t.Fatal(err)
	}
	var meta map[string]int
	if err := json.Unmarshal(data, &meta); err != nil || meta["count"] != 1 {
		t.Errorf("meta.json = %s (err %v)", data, err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/travelkit/out", filepath.Join(home, "travelkit/out")},
		{"relative/path", "relative/path"},
		{"/abs/path", "/abs/path"},
		{"~user/path", "~user/path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
