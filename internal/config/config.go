// Package config provides configuration management for the gee documentation site.
package config

import (
	"log"
	"time"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// Default upstream fetch settings
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxDocSize   = 1 * 1024 * 1024 // 1 MB max fetched document

	// Default web server ports
	DefaultListenPort    = 11980
	DefaultSSLListenPort = 19443
)

// MainConfig holds the main configuration for the gee site
type MainConfig struct {
	// Web interface settings
	Web WebConfig `json:"web"`

	// Upstream documentation source settings
	Docs DocsConfig `json:"docs"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	Debug      bool   `json:"debug"` // Enable gin debug mode and verbose logging
}

// DocsConfig holds the upstream documentation source configuration.
// Documents live in a directory of a GitHub repository and are fetched
// from the raw file host on every request.
type DocsConfig struct {
	Owner        string        `json:"owner"`        // GitHub repository owner
	Repo         string        `json:"repo"`         // GitHub repository name
	Branch       string        `json:"branch"`       // Branch the docs are served from
	Dir          string        `json:"dir"`          // Directory inside the repository
	RawBaseURL   string        `json:"raw_base_url"` // Raw file host base URL
	FetchTimeout time.Duration `json:"fetch_timeout"`
	MaxDocSize   int64         `json:"max_doc_size"` // Max bytes read from a fetched document
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {

	maincfg := &MainConfig{
		AppVersion: AppVersion, // Set application version

		Web: WebConfig{
			ListenPort: DefaultListenPort,
			SSL:        false,
		},

		Docs: DocsConfig{
			Owner:        "t-eckert",
			Repo:         "gee",
			Branch:       "main",
			Dir:          "docs",
			RawBaseURL:   "https://raw.githubusercontent.com",
			FetchTimeout: DefaultFetchTimeout,
			MaxDocSize:   DefaultMaxDocSize,
		},
	}

	log.Printf("MainConfig initialized: docs upstream %s/%s@%s/%s",
		maincfg.Docs.Owner, maincfg.Docs.Repo, maincfg.Docs.Branch, maincfg.Docs.Dir)
	return maincfg
}
