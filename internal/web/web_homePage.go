// Package web provides the HTTP server and web interface for the gee docs site
package web

import (
	"github.com/gin-gonic/gin"
)

// homePage is the handler for the home/root page ("/"). It renders a static
// page; there is no per-request state.
func (s *WebServer) homePage(c *gin.Context) {
	data := s.getBaseTemplateData("gee")
	s.renderTemplate(c, "home.html", data)
}
