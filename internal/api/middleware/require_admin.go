package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LoginPath is where anonymous visitors of admin pages are sent.
const LoginPath = "/dashboard"

// RequireAdmin lets the request through only with a session loaded by
// LoadSession and otherwise redirects to the login page.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentAdmin(c); !ok {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}
			return next(c)
		}
	}
}
