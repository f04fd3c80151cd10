package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/monishsatpuri/blogcms/internal/api/middleware"
	"github.com/monishsatpuri/blogcms/internal/api/view"
)

// newPage starts the template data for the current request.
func newPage(c echo.Context, title string) *view.Page {
	_, admin := middleware.CurrentAdmin(c)
	return &view.Page{Title: title, Admin: admin}
}
