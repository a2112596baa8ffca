package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
)

// writeError maps service errors to the HTTP contract: 422 for validation
// and conflicts, 401 for missing identity, 403 for wrong owner. Anything
// unexpected is logged and reported as a plain 500.
func (s *HTTPServer) writeError(c echo.Context, err error) error {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": ve.Messages})
	case errors.Is(err, common.ErrorConflict):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": []string{"Username must be unique."}})
	case errors.Is(err, common.ErrorUnauthorized):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	case errors.Is(err, common.ErrorForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	default:
		s.logger.Error(c.Request().Context(), "request failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}

func (s *HTTPServer) signup(c echo.Context) error {
	var req credentialsRequest
	// A missing or malformed body falls through to credential validation.
	_ = c.Bind(&req)

	user, token, err := s.auth.Signup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	s.setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, newUserJSON(user))
}

func (s *HTTPServer) login(c echo.Context) error {
	var req credentialsRequest
	_ = c.Bind(&req)

	user, token, err := s.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
		}
		return s.writeError(c, err)
	}

	s.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, newUserJSON(user))
}

func (s *HTTPServer) logout(c echo.Context) error {
	if err := s.auth.Logout(c.Request().Context(), s.sessionToken(c)); err != nil {
		return s.writeError(c, err)
	}

	s.clearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (s *HTTPServer) checkSession(c echo.Context) error {
	user, err := s.auth.CheckSession(c.Request().Context(), s.sessionToken(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newUserJSON(user))
}

// queryInt reads an integer query parameter, falling back to def on
// absent or unparseable values.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func (s *HTTPServer) notesIndex(c echo.Context) error {
	user := currentUser(c)

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", services.DefaultPerPage)

	result, err := s.notes.List(c.Request().Context(), user.ID, page, perPage)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newPageJSON(result, user))
}

func (s *HTTPServer) notesCreate(c echo.Context) error {
	user := currentUser(c)

	var req noteRequest
	_ = c.Bind(&req)

	note, err := s.notes.Create(c.Request().Context(), user.ID, req.Title, req.Content)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newNoteJSON(note, user))
}
