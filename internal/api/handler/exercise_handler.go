package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/exercise-tracker/internal/api/metrics"
	"github.com/fittrack/exercise-tracker/internal/core/ports"
)

// ExerciseHandler handles HTTP requests for the activity log.
type ExerciseHandler struct {
	service ports.ExerciseService
}

func NewExerciseHandler(service ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// Add handles POST /api/users/:id/exercises.
//
// @Summary      Record an exercise for a user
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "User id"
// @Param        body  body      addExerciseRequest  true  "Exercise details"
// @Success      200   {object}  exerciseResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/users/{id}/exercises [post]
func (h *ExerciseHandler) Add(c echo.Context) error {
	var req addExerciseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.service.Append(c.Request().Context(), toAppendInput(c.Param("id"), req))
	if err != nil {
		return respondError(c, err)
	}

	metrics.ExercisesRecordedTotal.Inc()
	metrics.ExerciseDurationMinutes.Observe(result.Duration)
	return c.JSON(http.StatusOK, toExerciseResponse(result))
}

// Logs handles GET /api/users/:id/logs.
//
// @Summary      Retrieve a user's exercise log
// @Tags         exercises
// @Produce      json
// @Param        id     path      string  true   "User id"
// @Param        from   query     string  false  "Lower date bound (exclusive)"
// @Param        to     query     string  false  "Upper date bound (exclusive)"
// @Param        limit  query     int     false  "Head limit on returned entries"
// @Success      200    {object}  logResponse
// @Failure      400    {object}  errorResponse
// @Router       /api/users/{id}/logs [get]
func (h *ExerciseHandler) Logs(c echo.Context) error {
	query := ports.LogQuery{
		UserID: c.Param("id"),
		From:   c.QueryParam("from"),
		To:     c.QueryParam("to"),
		Limit:  c.QueryParam("limit"),
	}

	result, err := h.service.GetLog(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	metrics.LogQueriesTotal.WithLabelValues(strconv.FormatBool(query.From != "" && query.To != "")).Inc()
	return c.JSON(http.StatusOK, toLogResponse(result))
}
