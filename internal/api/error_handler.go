package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// errorResponse is the canonical envelope for errors that escape the
// handlers. Handlers map their known domain errors inline; this catches
// routing errors and anything unexpected.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders wrong-method and not-found routing errors in the same
//     envelope the auth endpoints use.
//   - Maps known domain errors to deterministic status codes.
//   - Logs unexpected errors internally without leaking details to the
//     client — no query text or stack traces ever reach a response.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404/405 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusMethodNotAllowed {
			return he.Code, "Invalid request method"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrAccountDeactivated):
		return http.StatusForbidden, "Your account has been deactivated. Please contact support."
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "Please log in to continue"
	case errors.Is(err, domain.ErrProfileNotFound):
		// Orphaned credential: a server-side data fault, not user error.
		log.Error().Err(err).Str("path", c.Path()).Msg("data integrity fault")
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong. Please try again."
}
