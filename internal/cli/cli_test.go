package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/five82/tutordesk/internal/tutorials"
)

type requestLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *requestLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...)
}

func newAPIServer(t *testing.T, list []tutorials.Tutorial) (*httptest.Server, *requestLog) {
	t.Helper()
	reqs := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqs.mu.Lock()
		reqs.paths = append(reqs.paths, r.URL.RequestURI())
		reqs.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	}))
	t.Cleanup(srv.Close)
	return srv, reqs
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TUTORDESK_API", "")
	t.Setenv("TUTORDESK_CONFIG", "")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportCmd_WritesTextToStdout(t *testing.T) {
	srv, reqs := newAPIServer(t, []tutorials.Tutorial{{ID: 4, Title: "Channels", Published: true}})
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	out, err := runCmd(t, "--config", cfg, "--api", srv.URL, "export", "--format", "text", "--title", " chan ")
	if err != nil {
		t.Fatalf("export returned error: %v", err)
	}
	if !strings.Contains(out, "Channels") || !strings.Contains(out, "Published") {
		t.Fatalf("output = %q, want the tutorial row", out)
	}
	if paths := reqs.get(); len(paths) != 1 || paths[0] != "/api/tutorials?title=chan" {
		t.Fatalf("requests = %v, want one title query", paths)
	}
}

func TestExportCmd_PublishedUsesPublishedEndpoint(t *testing.T) {
	srv, reqs := newAPIServer(t, nil)
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	if _, err := runCmd(t, "--config", cfg, "--api", srv.URL, "export", "--published", "--format", "json"); err != nil {
		t.Fatalf("export returned error: %v", err)
	}
	if paths := reqs.get(); len(paths) != 1 || paths[0] != "/api/tutorials/published" {
		t.Fatalf("requests = %v, want the published endpoint", paths)
	}
}

func TestExportCmd_RejectsTitleWithPublished(t *testing.T) {
	_, err := runCmd(t, "--api", "http://127.0.0.1:1", "export", "--published", "--title", "go")
	if err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Fatalf("export error = %v, want flag conflict", err)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	if _, err := runCmd(t, "stray"); err == nil {
		t.Fatalf("root accepted a positional argument")
	}
}
