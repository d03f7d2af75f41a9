package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/exercise-tracker/internal/api/metrics"
	"github.com/fittrack/exercise-tracker/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Username"
// @Success      200   {object}  userIdentityResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Create(c.Request().Context(), req.Username)
	if err != nil {
		return respondError(c, err)
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, userIdentityResponse{ID: result.ID, Username: result.Username})
}

// Reset handles DELETE /api/users/reset. Destructive and unauthenticated.
//
// @Summary      Delete all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/users/reset [delete]
func (h *UserHandler) Reset(c echo.Context) error {
	if _, err := h.service.Reset(c.Request().Context()); err != nil {
		return err
	}

	metrics.UsersResetTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Msg: "users collection reset success"})
}
