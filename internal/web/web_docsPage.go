// Package web provides the HTTP server and web interface for the gee docs site
package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/t-eckert/gee/internal/docs"
)

// docsPage handles "/docs/:name". It fetches the raw markdown for the named
// document from the upstream source, converts it to HTML and renders it into
// the docs template. An unknown document renders the not-found page; the
// fetch is the only recoverable error condition.
func (s *WebServer) docsPage(c *gin.Context) {
	name := c.Param("name")
	if !docs.ValidName(name) {
		// Traversal-shaped or otherwise unsafe names never reach the upstream.
		s.renderNotFound(c)
		return
	}

	raw, err := s.Fetcher.Fetch(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			s.renderNotFound(c)
			return
		}
		s.renderError(c, http.StatusBadGateway, "Upstream unavailable", err.Error())
		return
	}

	data := DocsPageData{
		TemplateData: s.getBaseTemplateData(name),
		DocName:      name,
		Doc:          docs.RenderMarkdown(raw),
	}
	s.renderTemplate(c, "docs.html", data)
}
