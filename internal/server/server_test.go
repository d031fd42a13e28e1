package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	return New(cfg, zerolog.Nop())
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func resolveURL(path, fragment string) string {
	q := url.Values{}
	q.Set("path", path)
	q.Set("fragment", fragment)
	return "/api/resolve?" + q.Encode()
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("expected a request id header")
	}
}

func TestRequestIDIsKept(t *testing.T) {
	srv := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{AllowAll: true})

	req := httptest.NewRequest(http.MethodOptions, "/api/resolve", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestResolveEndpoint(t *testing.T) {
	srv := newTestServer(t, Config{})

	tests := []struct {
		name, path, fragment string
		wantRedirect         bool
		wantLocation         string
	}{
		{
			name:         "method",
			path:         "/reference/services/s3.html",
			fragment:     "S3.Client.delete_bucket",
			wantRedirect: true,
			wantLocation: "/reference/services/s3/client/delete_bucket.html",
		},
		{
			name:         "leading hash is accepted",
			path:         "/reference/services/s3.html",
			fragment:     "#S3.Client.delete_bucket.Bucket",
			wantRedirect: true,
			wantLocation: "/reference/services/s3/client/delete_bucket.html#S3.Client.delete_bucket.Bucket",
		},
		{
			name:         "bare exceptions item",
			path:         "/reference/services/s3.html",
			fragment:     "S3.Client.exceptions",
			wantRedirect: true,
			wantLocation: "/reference/services/s3/client/exceptions.html",
		},
		{
			name:         "mismatched service stays put",
			path:         "/reference/services/s3.html",
			fragment:     "EC2.Client.run_instances",
			wantLocation: "/reference/services/s3.html#EC2.Client.run_instances",
		},
		{
			name:         "no fragment",
			path:         "/reference/services/s3.html",
			wantLocation: "/reference/services/s3.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, srv, resolveURL(tt.path, tt.fragment))
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp resolveResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tt.wantRedirect, resp.Redirect)
			require.Equal(t, tt.wantLocation, resp.Location)
		})
	}
}

func TestResolveEndpointRejectsBadPath(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, p := range []string{"", "services/s3.html", "//evil.example/services/s3.html", `/\evil.example`} {
		w := get(t, srv, resolveURL(p, "S3.Client.delete_bucket"))
		if w.Code != http.StatusBadRequest {
			t.Errorf("path %q: status = %d, want 400", p, w.Code)
		}
	}
}

func TestRedirectEndpoint(t *testing.T) {
	srv := newTestServer(t, Config{})

	q := url.Values{"path": {"/reference/services/s3.html"}, "fragment": {"S3.Client.exceptions.NoSuchBucket"}}
	w := get(t, srv, "/r?"+q.Encode())
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/reference/services/s3/client/exceptions/NoSuchBucket.html", w.Header().Get("Location"))

	q.Set("fragment", "not-a-dotted-anchor")
	w = get(t, srv, "/r?"+q.Encode())
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/reference/services/s3.html#not-a-dotted-anchor", w.Header().Get("Location"))

	w = get(t, srv, "/r?path=//evil.example/")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShim(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, ShimPath)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/javascript"))
	require.Contains(t, w.Body.String(), "/api/resolve")
	require.Contains(t, w.Body.String(), "location.replace")
	require.NotContains(t, w.Body.String(), "/r?")
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "reference", "services"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reference", "services", "s3.html"), []byte("<h1>S3</h1>"), 0o644))

	srv := newTestServer(t, Config{DocsDir: dir})

	w := get(t, srv, "/reference/services/s3.html")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "<h1>S3</h1>")

	// API routes win over the file server.
	w = get(t, srv, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestNoStaticFilesWithoutDocsDir(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/reference/services/s3.html")
	require.Equal(t, http.StatusNotFound, w.Code)
}
