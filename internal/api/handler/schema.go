package handler

import (
	"encoding/json"

	"github.com/fittrack/exercise-tracker/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse wraps informational replies like the API status endpoint
// and the reset confirmation.
type messageResponse struct {
	Msg string `json:"msg"`
}

// --- User directory ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
}

type userIdentityResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// --- Activity log ---

// addExerciseRequest keeps Duration raw so both JSON numbers and numeric
// strings are accepted; the service owns the coercion.
type addExerciseRequest struct {
	Description string          `json:"description"`
	Duration    json.RawMessage `json:"duration"`
	Date        string          `json:"date"`
}

type exerciseResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

type logResponse struct {
	Username string            `json:"username"`
	Count    int               `json:"count"`
	ID       string            `json:"id"`
	Log      []domain.Exercise `json:"log"`
}
