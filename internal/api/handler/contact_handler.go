package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monishsatpuri/blogcms/internal/api/metrics"
	"github.com/monishsatpuri/blogcms/internal/api/view"
	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

const (
	contactThanks    = "Thanks for getting in touch! Your message has been received."
	contactDuplicate = "A message with this phone number or email was already submitted."
)

type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Form renders the empty contact form.
//
// @Summary      Contact form
// @Tags         contact
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Router       /contact [get]
func (h *ContactHandler) Form(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageContact, newPage(c, "Contact"))
}

// Submit stores a visitor message.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        name     formData  string  true  "Sender name"
// @Param        email    formData  string  true  "Sender email"
// @Param        phone    formData  string  true  "Sender phone"
// @Param        message  formData  string  true  "Message body"
// @Success      200  {string}  string  "HTML page with confirmation"
// @Failure      400  {string}  string  "HTML page with validation error"
// @Failure      409  {string}  string  "HTML page, phone or email already used"
// @Failure      503  {string}  string  "HTML error page"
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var form contactForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.trim()

	p := newPage(c, "Contact")
	if err := c.Validate(&form); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		p.Contact = form.view()
		p.Error = err.Error()
		return c.Render(http.StatusBadRequest, view.PageContact, p)
	}

	_, err := h.contacts.Submit(c.Request().Context(), form.input())
	switch {
	case err == nil:
		metrics.ContactSubmissionsTotal.WithLabelValues("ok").Inc()
		p.Flash = contactThanks
		return c.Render(http.StatusOK, view.PageContact, p)
	case errors.Is(err, domain.ErrConstraintViolation):
		metrics.ContactSubmissionsTotal.WithLabelValues("duplicate").Inc()
		p.Contact = form.view()
		p.Error = contactDuplicate
		return c.Render(http.StatusConflict, view.PageContact, p)
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		p.Contact = form.view()
		p.Error = err.Error()
		return c.Render(http.StatusBadRequest, view.PageContact, p)
	default:
		metrics.ContactSubmissionsTotal.WithLabelValues("error").Inc()
		return err
	}
}
