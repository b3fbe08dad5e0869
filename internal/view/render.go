package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageLanding = "landing"
	PageGuides  = "guides"
)

var pages = []string{PageLanding, PageGuides}

// Renderer implements echo.Renderer over the embedded page templates. Each page is
// parsed together with the shared layout so that both can define "content".
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	printer := message.NewPrinter(language.Russian)
	funcs := template.FuncMap{
		"count": func(n int) string {
			return printer.Sprintf("%d", n)
		},
		"rating": func(r float64) string {
			return printer.Sprintf("%.1f", r)
		},
		"join": strings.Join,
		"plusCount": func(items []string) string {
			return fmt.Sprintf("+%d", len(items))
		},
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
