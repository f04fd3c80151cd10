package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/monishsatpuri/blogcms/internal/api/metrics"
	"github.com/monishsatpuri/blogcms/internal/api/middleware"
	"github.com/monishsatpuri/blogcms/internal/api/view"
	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

const (
	loginFailed  = "Invalid credentials, try again."
	postConflict = "Another post already uses this title, subtitle, slug or content."
)

// AdminHandler drives the dashboard: login, logout and post editing.
// Every route except Dashboard, Login and Logout sits behind middleware.RequireAdmin.
type AdminHandler struct {
	auth    ports.AuthService
	content ports.ContentService
	cookies *middleware.SessionCookie
	log     zerolog.Logger
}

func NewAdminHandler(auth ports.AuthService, content ports.ContentService, cookies *middleware.SessionCookie, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{auth: auth, content: content, cookies: cookies, log: log}
}

// Dashboard lists every post for the admin, or shows the login form.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      html
// @Success      200  {string}  string  "Dashboard, or login form when anonymous"
// @Router       /dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	if _, ok := middleware.CurrentAdmin(c); !ok {
		return c.Render(http.StatusOK, view.PageLogin, newPage(c, "Admin login"))
	}
	return h.renderDashboard(c)
}

// Login checks the admin credentials and starts a session.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email     formData  string  true  "Admin username"
// @Param        password  formData  string  true  "Admin password"
// @Success      303  {string}  string  "Redirect to /dashboard"
// @Failure      401  {string}  string  "Login form with error"
// @Router       /dashboard [post]
func (h *AdminHandler) Login(c echo.Context) error {
	if _, ok := middleware.CurrentAdmin(c); ok {
		return h.renderDashboard(c)
	}

	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	session, err := h.auth.Login(c.Request().Context(), form.Username, form.Password)
	if errors.Is(err, domain.ErrAuthenticationFailure) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		p := newPage(c, "Admin login")
		p.Error = loginFailed
		return c.Render(http.StatusUnauthorized, view.PageLogin, p)
	}
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	if err := h.cookies.Issue(c, session); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		_ = h.auth.Logout(c.Request().Context(), session.Token)
		return fmt.Errorf("issue session cookie: %w", err)
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Logout ends the admin session. It reads the token straight from the cookie
// so the stored session is deleted even when it could not be loaded for this
// request, and the cookie is cleared in every case.
//
// @Summary      Admin logout
// @Tags         admin
// @Success      303  {string}  string  "Redirect to /dashboard"
// @Router       /logout [get]
func (h *AdminHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), h.cookies.Token(c)); err != nil {
		h.log.Warn().Err(err).Msg("session delete failed on logout")
	}
	h.cookies.Clear(c)
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// EditForm shows the editor: blank for the creation sentinel, filled for an
// existing post.
//
// @Summary      Post editor
// @Tags         admin
// @Produce      html
// @Param        id   path      string  true  "Post id, or 0 / new for a new post"
// @Success      200  {string}  string  "Editor page"
// @Failure      400  {string}  string  "Malformed id"
// @Failure      404  {string}  string  "No such post"
// @Router       /edit/{id} [get]
func (h *AdminHandler) EditForm(c echo.Context) error {
	id, err := domain.ParseEditTarget(c.Param("id"))
	if err != nil {
		return err
	}

	p := newPage(c, "Edit post")
	if id == 0 {
		p.Edit = &view.EditForm{}
		return c.Render(http.StatusOK, view.PageEdit, p)
	}

	post, err := h.content.Post(c.Request().Context(), id)
	if err != nil {
		return err
	}
	p.Edit = editView(post)
	return c.Render(http.StatusOK, view.PageEdit, p)
}

// Edit creates a post (id 0 or new) or updates an existing one.
//
// @Summary      Create or update a post
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id         path      string  true  "Post id, or 0 / new for a new post"
// @Param        etitle     formData  string  true  "Title"
// @Param        esubtitle  formData  string  true  "Subtitle"
// @Param        epostslug  formData  string  true  "Slug"
// @Param        econtent   formData  string  true  "Content"
// @Success      303  {string}  string  "Redirect to /edit/{id} of the saved post"
// @Failure      400  {string}  string  "Editor with validation error"
// @Failure      404  {string}  string  "No such post"
// @Failure      409  {string}  string  "Editor with uniqueness error"
// @Router       /edit/{id} [post]
func (h *AdminHandler) Edit(c echo.Context) error {
	id, err := domain.ParseEditTarget(c.Param("id"))
	if err != nil {
		return err
	}

	var form editForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.trim()

	req := domain.NewEditRequest(id, form.fields())
	op := "update"
	if _, ok := req.(domain.CreatePost); ok {
		op = "create"
	}

	p := newPage(c, "Edit post")
	p.Edit = form.view(id)

	if err := c.Validate(&form); err != nil {
		metrics.PostMutationsTotal.WithLabelValues(op, "invalid").Inc()
		p.Error = err.Error()
		return c.Render(http.StatusBadRequest, view.PageEdit, p)
	}

	post, err := h.content.Save(c.Request().Context(), req)
	switch {
	case err == nil:
		metrics.PostMutationsTotal.WithLabelValues(op, "ok").Inc()
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/edit/%d", post.ID))
	case errors.Is(err, domain.ErrConstraintViolation):
		metrics.PostMutationsTotal.WithLabelValues(op, "conflict").Inc()
		p.Error = postConflict
		return c.Render(http.StatusConflict, view.PageEdit, p)
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.PostMutationsTotal.WithLabelValues(op, "invalid").Inc()
		p.Error = err.Error()
		return c.Render(http.StatusBadRequest, view.PageEdit, p)
	case errors.Is(err, domain.ErrNotFound):
		metrics.PostMutationsTotal.WithLabelValues(op, "not_found").Inc()
		return err
	default:
		metrics.PostMutationsTotal.WithLabelValues(op, "error").Inc()
		return err
	}
}

// Delete removes a post if it exists and returns to the dashboard.
//
// @Summary      Delete a post
// @Tags         admin
// @Param        id   path      string  true  "Post id"
// @Success      303  {string}  string  "Redirect to /dashboard"
// @Router       /delete/{id} [get]
// @Router       /delete/{id} [post]
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := domain.ParseEditTarget(c.Param("id"))
	if err != nil || id == 0 {
		return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
	}

	deleted, err := h.content.Delete(c.Request().Context(), id)
	switch {
	case err != nil:
		metrics.PostMutationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	case deleted:
		metrics.PostMutationsTotal.WithLabelValues("delete", "ok").Inc()
	default:
		metrics.PostMutationsTotal.WithLabelValues("delete", "not_found").Inc()
	}
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func (h *AdminHandler) renderDashboard(c echo.Context) error {
	posts, err := h.content.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	p := newPage(c, "Dashboard")
	p.Posts = posts
	return c.Render(http.StatusOK, view.PageDashboard, p)
}
