// Package web provides the HTTP server and web interface for the gee docs site
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// docsIndexPage handles "/docs". It lists the documents available upstream so
// readers can browse without knowing names in advance. The listing is fetched
// per request, same as the documents themselves.
func (s *WebServer) docsIndexPage(c *gin.Context) {
	names, err := s.Index.List(c.Request.Context())
	if err != nil {
		s.renderError(c, http.StatusBadGateway, "Upstream unavailable", err.Error())
		return
	}

	data := DocsIndexPageData{
		TemplateData: s.getBaseTemplateData("Documentation"),
		Docs:         names,
	}
	s.renderTemplate(c, "docs_index.html", data)
}
