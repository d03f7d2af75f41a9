package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/exercise-tracker/internal/core/domain"
)

// respondError maps the domain error taxonomy to HTTP 400 inline, so the
// handler unit tests see final status codes. Anything unrecognised is
// returned to Echo's central error handler, which logs it and shapes a 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidDate):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return err
}
