package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/monishsatpuri/blogcms/internal/api/middleware"
	"github.com/monishsatpuri/blogcms/internal/api/view"
	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the HTML error page, falling back to plain text.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		_, admin := middleware.CurrentAdmin(c)
		page := &view.Page{Title: http.StatusText(code), Admin: admin, Error: msg, Status: code}
		if rerr := c.Render(code, view.PageError, page); rerr != nil {
			log.Error().Err(rerr).Msg("render error page")
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "The page you are looking for does not exist."
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrConstraintViolation):
		return http.StatusConflict, "That value is already in use."
	case errors.Is(err, domain.ErrAuthenticationFailure):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("storage unavailable")
		return http.StatusServiceUnavailable, "The blog is temporarily unavailable. Please try again shortly."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
