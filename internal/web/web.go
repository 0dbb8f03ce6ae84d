// Package web embeds the templates and static assets so the server binary
// carries its UI without runtime filesystem paths.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"timefmt": func(t time.Time) string { return t.Format("15:04:05") },
	"datefmt": func(t time.Time) string { return t.Format("Mon Jan 2 15:04:05") },
}

// Templates parses every page and partial into a single template set for gin.
func Templates() *template.Template {
	return template.Must(
		template.New("").Funcs(funcs).ParseFS(templateFS,
			"templates/*.html",
			"templates/partials/*.html",
		),
	)
}

// Static returns the embedded static asset tree rooted at its own directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
