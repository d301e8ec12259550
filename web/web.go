// Package web embeds the HTML templates served by the router.
package web

import (
	"embed"
	"html/template"
)

//go:embed template/*.html
var templateFS embed.FS

// LoadTemplates parses every embedded page template.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
	}).ParseFS(templateFS, "template/*.html")
}
