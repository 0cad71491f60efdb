// Package site renders the server-side markup: full documents for the first
// request and body fragments for live updates.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Titles for the document <title> of each page.
var titles = map[string]string{
	"home":     "Portfolio",
	"creator":  "Content Creator",
	"producer": "Independent Producer",
	"explorer": "Side Projects",
	"review":   "2025 Review",
}

// NavItem is one entry of the top navigation.
type NavItem struct {
	Name   string
	Path   string
	Label  string
	Active bool
}

var nav = []NavItem{
	{Name: "home", Path: "/", Label: "Home"},
	{Name: "creator", Path: "/creator", Label: "Creator"},
	{Name: "producer", Path: "/producer", Label: "Producer"},
	{Name: "explorer", Path: "/explorer", Label: "Explorer"},
	{Name: "review", Path: "/review", Label: "Review"},
}

// document is the data for the outer layout.
type document struct {
	Name  string
	Title string
	Nav   []NavItem
	Body  template.HTML
}

// Renderer executes the embedded templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	for name := range titles {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("missing template for page %q", name)
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Fragment writes the body of the named page for data, which is the page's
// view.
func (r *Renderer) Fragment(w io.Writer, page string, data any) error {
	if _, ok := titles[page]; !ok {
		return fmt.Errorf("no template for page %q", page)
	}
	return r.tmpl.ExecuteTemplate(w, page, data)
}

// Page writes a complete document with the page body already rendered, so
// the first paint needs no websocket round trip.
func (r *Renderer) Page(w io.Writer, page string, data any) error {
	var body bytes.Buffer
	if err := r.Fragment(&body, page, data); err != nil {
		return err
	}
	items := make([]NavItem, len(nav))
	copy(items, nav)
	for i := range items {
		items[i].Active = items[i].Name == page
	}
	return r.tmpl.ExecuteTemplate(w, "layout", document{
		Name:  page,
		Title: titles[page],
		Nav:   items,
		Body:  template.HTML(body.String()),
	})
}

// Static serves the embedded scripts and styles.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"add":  func(a, b int) int { return a + b },
	// pct scales v against the larger of a pair for progress bars.
	"pct": func(v, other int) int {
		hi := v
		if other > hi {
			hi = other
		}
		if hi <= 0 {
			return 0
		}
		return v * 100 / hi
	},
	"px": func(f float64) string { return fmt.Sprintf("%.1fpx", f) },
	"stars": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
}
