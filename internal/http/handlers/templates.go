package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"strings"

	"github.com/alandalus/library-site/internal/i18n"
	"github.com/alandalus/library-site/internal/seo"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// StaticFS exposes the embedded assets to the router.
func StaticFS() fs.FS { return staticFS }

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"t":    i18n.T,
	"dir":  i18n.Dir,
	"join": strings.Join,
}).ParseFS(templateFS, "templates/*.gohtml"))

// jsonLD marshals a structured-data payload for a <script> block. A
// nil payload renders nothing.
func jsonLD(sd seo.StructuredData) template.JS {
	if sd == nil {
		return ""
	}
	out, err := json.Marshal(sd)
	if err != nil {
		return ""
	}
	return template.JS(out)
}
