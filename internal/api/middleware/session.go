package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

const (
	// CookieName is the cookie carrying the signed session token.
	CookieName = "session"

	adminKey = "admin"
)

// SessionCookie signs session tokens into an HS256 JWT cookie and reads them
// back. The JWT only proves the token was issued here; whether the session
// is still live is decided by the session store.
type SessionCookie struct {
	secret []byte
	secure bool
	now    func() time.Time
}

func NewSessionCookie(secret string, secure bool) *SessionCookie {
	return &SessionCookie{secret: []byte(secret), secure: secure, now: time.Now}
}

// Issue writes the cookie for session.
func (s *SessionCookie) Issue(c echo.Context, session *domain.AdminSession) error {
	claims := jwt.RegisteredClaims{
		ID:        session.Token,
		Subject:   session.Username,
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the cookie in the browser.
func (s *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the session token from a valid cookie, or "".
func (s *SessionCookie) Token(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return ""
	}
	return claims.ID
}

// LoadSession resolves the cookie to an admin session and stores it on the
// context. Requests without a live session continue as anonymous; a session
// store failure is logged by the auth service and also yields anonymous.
func LoadSession(cookies *SessionCookie, auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := cookies.Token(c)
			if token == "" {
				return next(c)
			}

			session, err := auth.Session(c.Request().Context(), token)
			switch {
			case err == nil:
				SetAdmin(c, session)
			case errors.Is(err, domain.ErrNotFound):
				cookies.Clear(c)
			}
			return next(c)
		}
	}
}

// SetAdmin marks the request as made by the given admin session.
func SetAdmin(c echo.Context, session *domain.AdminSession) {
	c.Set(adminKey, session)
}

// CurrentAdmin returns the session set by LoadSession.
func CurrentAdmin(c echo.Context) (*domain.AdminSession, bool) {
	session, ok := c.Get(adminKey).(*domain.AdminSession)
	return session, ok && session != nil
}
