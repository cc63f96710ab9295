package docs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	gh "github.com/google/go-github/v80/github"
)

func newTestIndex(t *testing.T, handler http.HandlerFunc) *Index {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gh.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}
	client.BaseURL = base

	cfg := testDocsConfig(srv.URL)
	return NewIndexWithClient(client, cfg)
}

func TestIndex_ListsMarkdownBasenamesSorted(t *testing.T) {
	ix := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/t-eckert/gee/contents/docs" {
			t.Errorf("unexpected API path: %s", r.URL.Path)
		}
		if ref := r.URL.Query().Get("ref"); ref != "main" {
			t.Errorf("expected ref=main, got %q", ref)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "usage.md", "type": "file"},
			{"name": "intro.md", "type": "file"},
			{"name": "assets", "type": "dir"},
			{"name": "diagram.png", "type": "file"}
		]`))
	})

	names, err := ix.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	want := []string{"intro", "usage"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}

func TestIndex_ListError(t *testing.T) {
	ix := newTestIndex(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := ix.List(context.Background()); err == nil {
		t.Fatal("expected error from failing API")
	}
}
