package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	templateSlots = "slots.tmpl"
	templateAdmin = "admin.tmpl"
	templateError = "error.tmpl"
)

// ParseTemplates loads the page templates for gin's HTML renderer.
func ParseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}
