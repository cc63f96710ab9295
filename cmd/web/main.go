// Web server for the gee documentation site
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/t-eckert/gee/internal/config"
	"github.com/t-eckert/gee/internal/docs"
	"github.com/t-eckert/gee/internal/web"
)

var (
	// command-line flags
	webport      int
	webssl       bool
	webcertFile  string
	webkeyFile   string
	webdebug     bool
	docsRepo     string
	docsBranch   string
	docsDir      string
	fetchTimeout time.Duration
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.IntVar(&webport, "webport", 0, "Web server port (default: 11980 (no ssl) or 19443 (webssl))")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&webdebug, "webdebug", false, "Enable gin debug mode and verbose logging")
	flag.StringVar(&docsRepo, "docs-repo", "t-eckert/gee", "GitHub repository the docs are served from (owner/name)")
	flag.StringVar(&docsBranch, "docs-branch", "main", "Branch the docs are served from")
	flag.StringVar(&docsDir, "docs-dir", "docs", "Directory inside the repository holding the markdown files")
	flag.DurationVar(&fetchTimeout, "fetch-timeout", config.DefaultFetchTimeout, "Timeout for upstream document fetches")
	flag.Parse()

	mainConfig := config.NewDefaultConfig()

	owner, repo, ok := strings.Cut(docsRepo, "/")
	if !ok || owner == "" || repo == "" {
		log.Fatalf("[WEB]: Invalid -docs-repo %q, expected owner/name", docsRepo)
	}
	mainConfig.Docs.Owner = owner
	mainConfig.Docs.Repo = repo
	mainConfig.Docs.Branch = docsBranch
	mainConfig.Docs.Dir = docsDir
	mainConfig.Docs.FetchTimeout = fetchTimeout

	mainConfig.Web.SSL = webssl
	mainConfig.Web.CertFile = webcertFile
	mainConfig.Web.KeyFile = webkeyFile
	mainConfig.Web.Debug = webdebug
	switch {
	case webport > 0:
		mainConfig.Web.ListenPort = webport
	case webssl:
		mainConfig.Web.ListenPort = config.DefaultSSLListenPort
	}

	fetcher := docs.NewFetcher(mainConfig.Docs)
	index := docs.NewIndex(mainConfig.Docs)

	// Create and start web server in a goroutine for non-blocking startup
	server := web.NewServer(&mainConfig.Web, fetcher, index)

	// Set up cross-platform signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt) // Cross-platform (Ctrl+C on both Windows and Linux)

	log.Printf("[WEB]: Starting web server...")

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to gracefully shutdown...")

	// Wait for either shutdown signal or server error
	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, shutting down...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}
}
