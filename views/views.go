// Package views holds the embedded HTML templates of the site.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"

	"ngoconnect-web/models"
	"ngoconnect-web/utils"
)

//go:embed templates/*.html static
var files embed.FS

var funcs = template.FuncMap{
	"timeago":  utils.TimeAgo,
	"markdown": utils.Markdown,
	"bytes":    utils.Bytes,
	"owns": func(p models.Post, id models.Identity) bool {
		return p.OwnedBy(id)
	},
	"join": strings.Join,
}

// Load parses every page and partial. Uploaded images are served by the
// backend, so relative image paths are resolved against backendURL.
func Load(backendURL string) (*template.Template, error) {
	fm := template.FuncMap{"asset": assetURL(backendURL)}
	for name, fn := range funcs {
		fm[name] = fn
	}
	return template.New("").Funcs(fm).ParseFS(files, "templates/*.html")
}

func assetURL(base string) func(string) string {
	base = strings.TrimRight(base, "/")
	return func(p string) string {
		if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			return p
		}
		return base + "/" + strings.TrimLeft(p, "/")
	}
}

// Static returns the stylesheet and other assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
