package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusHandler handles GET /api — the API root status endpoint.
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

func (h *StatusHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Msg: "exercise tracker API is up"})
}
