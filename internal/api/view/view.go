// Package view renders the server-side HTML pages through echo's Renderer.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

//go:embed templates/*.html
var files embed.FS

// Page names accepted by Renderer.Render.
const (
	PageIndex     = "index.html"
	PagePost      = "post.html"
	PageAbout     = "about.html"
	PageContact   = "contact.html"
	PageLogin     = "login.html"
	PageDashboard = "dashboard.html"
	PageEdit      = "edit.html"
	PageError     = "error.html"
)

var pages = []string{
	PageIndex, PagePost, PageAbout, PageContact,
	PageLogin, PageDashboard, PageEdit, PageError,
}

// Params are the site-wide values every page can show.
type Params struct {
	BlogName string
	Tagline  string
	About    string
}

// EditForm holds the values shown in the post editor. ID 0 is a new post.
type EditForm struct {
	ID       int64
	Title    string
	Subtitle string
	Slug     string
	Content  string
}

// ContactForm echoes a rejected contact submission back to the visitor.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Page is the data handed to every template.
type Page struct {
	Params  Params
	Title   string
	Admin   bool
	Posts   []domain.Post
	Post    *domain.Post
	Edit    *EditForm
	Contact *ContactForm
	Flash   string
	Error   string
	Status  int
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	params    Params
	templates map[string]*template.Template
}

func New(params Params) (*Renderer, error) {
	funcs := template.FuncMap{
		"linebreaks": linebreaks,
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("").Funcs(funcs).ParseFS(files, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{params: params, templates: templates}, nil
}

// Render executes the named page inside the base layout. A *Page without
// Params gets the site params filled in.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	if p, ok := data.(*Page); ok && p.Params == (Params{}) {
		p.Params = r.params
	}
	return t.ExecuteTemplate(w, "base", data)
}

// linebreaks escapes s and turns blank-line separated blocks into paragraphs.
func linebreaks(s string) template.HTML {
	s = template.HTMLEscapeString(s)

	var result []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, "<p>"+strings.ReplaceAll(p, "\n", "<br>")+"</p>")
		}
	}
	return template.HTML(strings.Join(result, "\n"))
}
