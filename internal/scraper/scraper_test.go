package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div id="x">  Anna <b>Beispiel</b>
		<script>var x = 1;</script><!-- note --> <i> </i>Miele</div>`))
	if err != nil {
		t.Fatal(err)
	}
	sel := doc.Find("#x")

	if got := text(sel, " "); got != "Anna Beispiel Miele" {
		t.Errorf(`text(" ") = %q, want "Anna Beispiel Miele"`, got)
	}
	if got := text(sel, ""); got != "AnnaBeispielMiele" {
		t.Errorf(`text("") = %q, want "AnnaBeispielMiele"`, got)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"ok", http.StatusOK, false},
		{"not found", http.StatusNotFound, true},
		{"server error", http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); ua != "tester" {
					t.Errorf("User-Agent = %q, want tester", ua)
				}
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			resp, err := get(context.Background(), newHTTPClient(time.Second), server.URL, "tester")
			if (err != nil) != tt.wantErr {
				t.Fatalf("get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp != nil {
				resp.Body.Close() // nolint:errcheck
			}
		})
	}
}

func TestGet_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := get(ctx, newHTTPClient(time.Second), server.URL, UserAgent); err == nil {
		t.Error("get() expected error for cancelled context")
	}
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	if c := newHTTPClient(0); c.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", c.Timeout, DefaultTimeout)
	}
	if c := newHTTPClient(3 * time.Second); c.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", c.Timeout)
	}
}
