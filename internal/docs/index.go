package docs

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/t-eckert/gee/internal/config"
)

// Index lists the markdown documents available in the upstream docs directory
// via the GitHub contents API. Listings are fetched per request, same as the
// documents themselves.
type Index struct {
	gh     *gh.Client
	owner  string
	repo   string
	branch string
	dir    string
}

// NewIndex creates an Index backed by the public GitHub API.
func NewIndex(cfg config.DocsConfig) *Index {
	hc := &http.Client{Timeout: cfg.FetchTimeout}
	return NewIndexWithClient(gh.NewClient(hc), cfg)
}

// NewIndexWithClient creates an Index with a caller-supplied API client.
// Tests point the client at a local server.
func NewIndexWithClient(client *gh.Client, cfg config.DocsConfig) *Index {
	return &Index{
		gh:     client,
		owner:  cfg.Owner,
		repo:   cfg.Repo,
		branch: cfg.Branch,
		dir:    cfg.Dir,
	}
}

// List returns the sorted basenames of the markdown files in the upstream
// docs directory. Non-markdown entries and subdirectories are skipped.
func (ix *Index) List(ctx context.Context) ([]string, error) {
	_, entries, _, err := ix.gh.Repositories.GetContents(ctx, ix.owner, ix.repo, ix.dir,
		&gh.RepositoryContentGetOptions{Ref: ix.branch})
	if err != nil {
		return nil, fmt.Errorf("docs: list %s/%s/%s: %w", ix.owner, ix.repo, ix.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.GetType() != "file" {
			continue
		}
		name := entry.GetName()
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".md"))
	}
	sort.Strings(names)
	return names, nil
}
