package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

const currentUserKey = "currentUser"

// sessionToken extracts the opaque token from the session cookie, or ""
// when the cookie is absent.
func (s *HTTPServer) sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setSessionCookie binds the token to the client. The cookie is HTTP-only
// and SameSite=Lax; the token never appears in a response body.
func (s *HTTPServer) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie tells the client to drop the session cookie.
func (s *HTTPServer) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// requireSession gates the notes endpoints: the cookie must resolve to a
// live session whose user still exists. The resolved user is stored on the
// echo context for handlers to use.
func (s *HTTPServer) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := s.auth.CheckSession(c.Request().Context(), s.sessionToken(c))
		if err != nil {
			return s.writeError(c, err)
		}
		c.Set(currentUserKey, user)
		return next(c)
	}
}

// currentUser returns the user resolved by requireSession.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(currentUserKey).(*models.User)
	return user
}
