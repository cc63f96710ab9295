// Package web provides the HTTP server and web interface for the gee docs site
package web

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/t-eckert/gee/internal/config"
)

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common information
func (s *WebServer) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:       template.HTML(title),
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
		Port:        s.GetPort(),
		AppVersion:  config.AppVersion,
	}
}

// renderTemplate renders a template with base template data
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	// Load template individually to avoid engine setup issues
	tmpl := template.Must(template.ParseFS(EmbeddedTemplatesFS, "templates/base.html", "templates/"+templateName))
	c.Header("Content-Type", "text/html")
	err := tmpl.ExecuteTemplate(c.Writer, "base.html", data)
	if err != nil {
		log.Printf("Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
	}
}

// renderNotFound renders the not-found page for unknown documents
func (s *WebServer) renderNotFound(c *gin.Context) {
	data := s.getBaseTemplateData("Not Found")
	tmpl := template.Must(template.ParseFS(EmbeddedTemplatesFS, "templates/base.html", "templates/404.html"))
	c.Header("Content-Type", "text/html")
	c.Status(http.StatusNotFound)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		log.Printf("Error rendering 404 template: %v", err)
		c.String(http.StatusNotFound, "Not Found")
	}
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData("Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	log.Printf("[ERROR]:internal/web: Error %d: %s - %s", statusCode, message, errstring)

	// Load template individually to avoid engine setup issues
	tmpl := template.Must(template.ParseFS(EmbeddedTemplatesFS, "templates/base.html", "templates/error.html"))
	c.Header("Content-Type", "text/html")
	c.Status(statusCode)
	err := tmpl.ExecuteTemplate(c.Writer, "base.html", errorData)
	if err != nil {
		log.Printf("Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s - %s", message, errstring)
	}
}
