package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fittrack/exercise-tracker/internal/core/ports"
)

// --- Request → Service input ---

func toAppendInput(userID string, req addExerciseRequest) ports.AppendExerciseInput {
	return ports.AppendExerciseInput{
		UserID:      userID,
		Description: req.Description,
		Duration:    rawScalarString(req.Duration),
		Date:        req.Date,
	}
}

// rawScalarString renders a raw JSON scalar as its bare string form, so
// `30` and `"30"` both arrive at the service as "30". null and absent
// values become the empty string.
func rawScalarString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return s
}

// --- Service result → Response ---

func toExerciseResponse(result *ports.AppendExerciseResult) exerciseResponse {
	return exerciseResponse{
		ID:          result.ID,
		Username:    result.Username,
		Description: result.Description,
		Duration:    result.Duration,
		Date:        result.Date,
	}
}

func toLogResponse(result *ports.LogResult) logResponse {
	return logResponse{
		Username: result.Username,
		Count:    result.Count,
		ID:       result.ID,
		Log:      result.Log,
	}
}
