package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Templates parses every page template together with the shared layout.
func Templates() (*template.Template, error) {
	t, err := template.New("").ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// MustTemplates is Templates for program start-up.
func MustTemplates() *template.Template {
	t, err := Templates()
	if err != nil {
		panic(err)
	}
	return t
}

// Static is the stylesheet tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// RenderRegion renders one container on its own. The output depends only on r.
func RenderRegion(w io.Writer, r Region) error {
	t, err := Templates()
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, "region", r)
}

// RegionHTML is RenderRegion into a string.
func RegionHTML(r Region) (string, error) {
	var buf bytes.Buffer
	if err := RenderRegion(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
