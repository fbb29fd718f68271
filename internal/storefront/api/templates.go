package api

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// LoadTemplates parses the page templates; each page is addressed by file name, e.g. "cart.tmpl".
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("storefront").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse storefront templates: %w", err)
	}
	return tmpl, nil
}
