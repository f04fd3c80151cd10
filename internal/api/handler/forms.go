package handler

import (
	"strings"

	"github.com/monishsatpuri/blogcms/internal/api/view"
	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

// loginForm mirrors the login page; the username travels as "email".
type loginForm struct {
	Username string `form:"email"    validate:"required"`
	Password string `form:"password" validate:"required"`
}

type editForm struct {
	Title    string `form:"etitle"    validate:"required,max=20"`
	Subtitle string `form:"esubtitle" validate:"required,max=20"`
	Slug     string `form:"epostslug" validate:"required,max=120,excludesall=/?#"`
	Content  string `form:"econtent"  validate:"required,max=120"`
}

func (f *editForm) trim() {
	f.Title = strings.TrimSpace(f.Title)
	f.Subtitle = strings.TrimSpace(f.Subtitle)
	f.Slug = strings.TrimSpace(f.Slug)
	f.Content = strings.TrimSpace(f.Content)
}

// fields leaves Date empty so the content service stamps today's date.
func (f editForm) fields() domain.PostFields {
	return domain.PostFields{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Slug:     f.Slug,
		Content:  f.Content,
	}
}

func (f editForm) view(id int64) *view.EditForm {
	return &view.EditForm{ID: id, Title: f.Title, Subtitle: f.Subtitle, Slug: f.Slug, Content: f.Content}
}

func editView(p *domain.Post) *view.EditForm {
	return &view.EditForm{ID: p.ID, Title: p.Title, Subtitle: p.Subtitle, Slug: p.Slug, Content: p.Content}
}

type contactForm struct {
	Name    string `form:"name"    validate:"required,max=80"`
	Email   string `form:"email"   validate:"required,email,max=120"`
	Phone   string `form:"phone"   validate:"required,max=20"`
	Message string `form:"message" validate:"required,max=120"`
}

func (f *contactForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
}

func (f contactForm) input() ports.ContactInput {
	return ports.ContactInput{Name: f.Name, Email: f.Email, Phone: f.Phone, Message: f.Message}
}

func (f contactForm) view() *view.ContactForm {
	return &view.ContactForm{Name: f.Name, Email: f.Email, Phone: f.Phone, Message: f.Message}
}
