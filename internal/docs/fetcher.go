// Package docs fetches and renders the remote markdown documentation
// served by the gee site.
package docs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/t-eckert/gee/internal/config"
)

// ErrNotFound is returned when the upstream does not have the requested document.
// Any non-2xx upstream status maps to this error.
var ErrNotFound = errors.New("docs: document not found")

// Fetcher retrieves raw markdown documents from the upstream raw file host.
// Every call re-fetches; there is no caching layer.
type Fetcher struct {
	client  *http.Client
	baseURL string // e.g. https://raw.githubusercontent.com/t-eckert/gee/main/docs
	maxSize int64
}

// NewFetcher creates a Fetcher for the configured upstream source.
func NewFetcher(cfg config.DocsConfig) *Fetcher {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = config.DefaultFetchTimeout
	}
	maxSize := cfg.MaxDocSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxDocSize
	}
	return &Fetcher{
		client: &http.Client{
			Transport: tr,
			Timeout:   timeout,
		},
		baseURL: fmt.Sprintf("%s/%s/%s/%s/%s", cfg.RawBaseURL, cfg.Owner, cfg.Repo, cfg.Branch, cfg.Dir),
		maxSize: maxSize,
	}
}

// Fetch performs a synchronous GET for the named document and returns the raw
// markdown text. A non-2xx upstream status returns ErrNotFound; transport
// failures are returned as-is.
func (f *Fetcher) Fetch(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/%s.md", f.baseURL, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("docs: build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("docs: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", ErrNotFound
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize))
	if err != nil {
		return "", fmt.Errorf("docs: read %s: %w", url, err)
	}
	return string(body), nil
}
