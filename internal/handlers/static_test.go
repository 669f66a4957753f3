package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testDist(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>loopify app</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log('hi')"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestSPAHandler(t *testing.T) {
	h := SPAHandler(testDist(t))

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{"root serves index", "/", http.StatusOK, "loopify app"},
		{"existing asset", "/assets/app.js", http.StatusOK, "console.log"},
		{"client route falls back", "/return", http.StatusOK, "loopify app"},
		{"nested client route falls back", "/public/return", http.StatusOK, "loopify app"},
		{"missing asset is 404", "/assets/missing.js", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if tt.contains != "" && !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("body missing %q: %s", tt.contains, w.Body.String())
			}
		})
	}
}
