package httpapi

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"fyyur/internal/models"
)

//go:embed templates
var templatesFS embed.FS

// Renderer writes a named page with the given status.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

// View is the value every page template executes against.
type View struct {
	Flashes []string
	Data    any
}

const (
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

// FormatDateTime renders t in the "medium" or "full" style. Any other
// format string is used as a time layout.
func FormatDateTime(t time.Time, format string) string {
	switch format {
	case "", "medium":
		return t.Format(mediumLayout)
	case "full":
		return t.Format(fullLayout)
	default:
		return t.Format(format)
	}
}

var templateFuncs = template.FuncMap{
	"datetime": FormatDateTime,
	"join":     strings.Join,
	"contains": func(list []string, v string) bool {
		for _, item := range list {
			if item == v {
				return true
			}
		}
		return false
	},
	"states": func() []string { return models.States },
	"genres": func() []string { return models.Genres },
}

type templateRenderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded layout with each page under
// templates/pages, templates/forms and templates/errors. Pages are named by
// their file name without extension, errors as "404" and "500".
func NewRenderer() (Renderer, error) {
	layout, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templatesFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &templateRenderer{pages: make(map[string]*template.Template)}
	for _, dir := range []string{"templates/pages", "templates/forms", "templates/errors"} {
		files, err := fs.Glob(templatesFS, dir+"/*.html")
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", dir, err)
		}
		for _, file := range files {
			page, err := template.Must(layout.Clone()).ParseFS(templatesFS, file)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			r.pages[strings.TrimSuffix(path.Base(file), ".html")] = page
		}
	}
	return r, nil
}

func (r *templateRenderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("render: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
