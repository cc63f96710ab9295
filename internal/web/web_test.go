package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/t-eckert/gee/internal/config"
	"github.com/t-eckert/gee/internal/docs"
)

// newTestServer wires a WebServer against local stand-ins for the raw file
// host and the GitHub contents API.
func newTestServer(t *testing.T, upstream, api http.HandlerFunc) *WebServer {
	t.Helper()

	if upstream == nil {
		upstream = func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}
	}
	if api == nil {
		api = func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`[]`))
		}
	}

	up := httptest.NewServer(upstream)
	t.Cleanup(up.Close)
	apiSrv := httptest.NewServer(api)
	t.Cleanup(apiSrv.Close)

	cfg := config.NewDefaultConfig()
	cfg.Docs.RawBaseURL = up.URL

	client := gh.NewClient(apiSrv.Client())
	base, err := url.Parse(apiSrv.URL + "/")
	if err != nil {
		t.Fatalf("parse API server URL: %v", err)
	}
	client.BaseURL = base

	fetcher := docs.NewFetcher(cfg.Docs)
	index := docs.NewIndexWithClient(client, cfg.Docs)
	return NewServer(&cfg.Web, fetcher, index)
}

func get(t *testing.T, s *WebServer, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := get(t, s, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "A web server for the modern web.") {
		t.Fatalf("expected home template content, got: %s", w.Body.String())
	}
}

func TestDocsPage_RendersMarkdown(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/t-eckert/gee/main/docs/intro.md" {
			t.Errorf("unexpected upstream path: %s", r.URL.Path)
		}
		w.Write([]byte("# Hello"))
	}, nil)

	w := get(t, s, "/docs/intro")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<h1>Hello</h1>") {
		t.Fatalf("expected rendered markdown, got: %s", body)
	}
	// Wrapped in the docs template, not served bare
	if !strings.Contains(body, `<article class="doc">`) {
		t.Fatalf("expected docs template wrapper, got: %s", body)
	}
}

func TestDocsPage_UpstreamMissingRendersNotFound(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}, nil)

	w := get(t, s, "/docs/missing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "That document does not exist.") {
		t.Fatalf("expected not-found template, got: %s", w.Body.String())
	}
}

func TestDocsPage_InvalidNameSkipsUpstream(t *testing.T) {
	upstreamHit := false
	s := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		upstreamHit = true
		w.Write([]byte("# should not be fetched"))
	}, nil)

	w := get(t, s, "/docs/bad..name")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if upstreamHit {
		t.Fatal("invalid name must not reach the upstream")
	}
}

func TestDocsPage_TransportErrorRendersErrorPage(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	upURL := up.URL
	up.Close() // fetches now fail at the transport level

	cfg := config.NewDefaultConfig()
	cfg.Docs.RawBaseURL = upURL
	s := NewServer(&cfg.Web, docs.NewFetcher(cfg.Docs), docs.NewIndex(cfg.Docs))

	w := get(t, s, "/docs/intro")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Upstream unavailable") {
		t.Fatalf("expected error template, got: %s", w.Body.String())
	}
}

func TestDocsPage_Idempotent(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("# Hello"))
	}, nil)

	first := get(t, s, "/docs/intro")
	second := get(t, s, "/docs/intro")
	if first.Code != second.Code {
		t.Fatalf("status differs across identical requests: %d vs %d", first.Code, second.Code)
	}
	for _, w := range []*httptest.ResponseRecorder{first, second} {
		if !strings.Contains(w.Body.String(), "<h1>Hello</h1>") {
			t.Fatalf("expected rendered markdown, got: %s", w.Body.String())
		}
	}
}

func TestDocsIndexPage(t *testing.T) {
	s := newTestServer(t, nil, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "usage.md", "type": "file"},
			{"name": "intro.md", "type": "file"}
		]`))
	})

	w := get(t, s, "/docs")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, link := range []string{`href="/docs/intro"`, `href="/docs/usage"`} {
		if !strings.Contains(body, link) {
			t.Fatalf("expected %s in index page, got: %s", link, body)
		}
	}
}

func TestPing(t *testing.T) {
	s := newTestServer(t, nil, nil)
	w := get(t, s, "/ping")
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("expected pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestStaticCSS(t *testing.T) {
	s := newTestServer(t, nil, nil)
	w := get(t, s, "/static/css/gee.css")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=3600") {
		t.Fatalf("expected cache headers on static files, got %q", cc)
	}
}
