package docgen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soyeahso/registrygen/internal/config"
	"github.com/soyeahso/registrygen/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryBody = `{"agents":[
	{"id":"zed","name":"Zed","version":"1.2.3","repository":"https://github.com/zed-industries/zed"},
	{"id":"amp","name":"Amp","version":"-"}
]}`

func testLogger() *logging.Logger {
	return logging.New(nil, "silent")
}

// cdnServer serves a two-agent registry and an icon for "zed" only.
func cdnServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/registry.json":
			w.Write([]byte(registryBody))
		case "/zed.svg":
			w.Write([]byte(`<svg width="10" viewBox="0 0 24 24"><path fill-rule="evenodd" d="M0 0"/></svg>`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, srv *httptest.Server) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.RegistryURL = srv.URL + "/registry.json"
	cfg.IconBaseURL = srv.URL
	cfg.Template = filepath.Join(dir, "_registry_agents.mdx")
	cfg.Output = filepath.Join(dir, "registry.mdx")
	return cfg
}

func writeTemplate(t *testing.T, cfg config.Config) {
	t.Helper()
	tmpl := "---\ntitle: Registry\n---\n\n$$AGENTS_CARDS$$\n"
	require.NoError(t, os.WriteFile(cfg.Template, []byte(tmpl), 0o644))
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t, cdnServer(t))
	writeTemplate(t, cfg)

	gen := New(cfg, testLogger())
	require.NoError(t, gen.Run(context.Background()))

	out, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	page := string(out)

	assert.Equal(t, 2, strings.Count(page, "<Card\n"))
	assert.NotContains(t, page, "$$AGENTS_CARDS$$")
	assert.Contains(t, page, "title: Registry")

	// Amp sorts before Zed
	assert.Less(t, strings.Index(page, `title="Amp"`), strings.Index(page, `title="Zed"`))

	// Zed's icon was fetched and sanitized; Amp has none
	assert.Contains(t, page, `fillRule="evenodd"`)
	assert.NotContains(t, page, `width="10"`)
	assert.Equal(t, 1, strings.Count(page, "icon={"))

	// Amp's dash version renders as unknown
	assert.Contains(t, page, "<code>version unknown</code>")
	assert.Contains(t, page, "<code>1.2.3</code>")
}

func TestRun_MissingTemplateIsFatal(t *testing.T) {
	cfg := testConfig(t, cdnServer(t))

	err := New(cfg, testLogger()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template file")
}

func TestRun_RegistryFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t, srv)
	writeTemplate(t, cfg)

	err := New(cfg, testLogger()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch registry")
	assert.NoFileExists(t, cfg.Output)
}

func TestRun_EmptyRegistryStillWrites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/registry.json" {
			w.Write([]byte(`{"agents":[]}`))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t, srv)
	writeTemplate(t, cfg)

	require.NoError(t, New(cfg, testLogger()).Run(context.Background()))

	out, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<CardGroup cols={3}>\n</CardGroup>")
	assert.NotContains(t, string(out), "<Card\n")
}

func TestRun_IconFailureDegradesToNoIcon(t *testing.T) {
	// every icon request fails; both cards must still render
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/registry.json" {
			w.Write([]byte(registryBody))
			return
		}
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t, srv)
	writeTemplate(t, cfg)

	require.NoError(t, New(cfg, testLogger()).Run(context.Background()))

	out, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(out), "<Card\n"))
	assert.NotContains(t, string(out), "icon={")
}
