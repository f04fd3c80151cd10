package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monishsatpuri/blogcms/internal/api/view"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

// BlogHandler serves the public pages.
type BlogHandler struct {
	reader ports.ReaderService
}

func NewBlogHandler(reader ports.ReaderService) *BlogHandler {
	return &BlogHandler{reader: reader}
}

// Home lists the most recent posts.
//
// @Summary      Home page
// @Tags         blog
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Failure      503  {string}  string  "HTML error page"
// @Router       / [get]
func (h *BlogHandler) Home(c echo.Context) error {
	posts, err := h.reader.Home(c.Request().Context())
	if err != nil {
		return err
	}
	p := newPage(c, "")
	p.Posts = posts
	return c.Render(http.StatusOK, view.PageIndex, p)
}

// Post shows a single post by slug.
//
// @Summary      Read a post
// @Tags         blog
// @Produce      html
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {string}  string  "HTML page"
// @Failure      404   {string}  string  "HTML error page"
// @Router       /post/{slug} [get]
func (h *BlogHandler) Post(c echo.Context) error {
	post, err := h.reader.Post(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	p := newPage(c, post.Title)
	p.Post = post
	return c.Render(http.StatusOK, view.PagePost, p)
}

// About renders the static about page.
//
// @Summary      About page
// @Tags         blog
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Router       /about [get]
func (h *BlogHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageAbout, newPage(c, "About"))
}
