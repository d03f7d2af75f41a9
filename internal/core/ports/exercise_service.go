package ports

import (
	"context"

	"github.com/fittrack/exercise-tracker/internal/core/domain"
)

// AppendExerciseInput carries the raw request fields for recording an
// exercise. Duration and Date arrive untyped from the transport layer; the
// service owns coercion and defaulting.
type AppendExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// AppendExerciseResult merges the stored entry with the owner's identity.
type AppendExerciseResult struct {
	ID          string
	Username    string
	Description string
	Duration    float64
	Date        string
}

// LogQuery carries the raw query parameters for a log retrieval. From, To
// and Limit are optional and kept as strings: invalid values degrade to
// "no filter" rather than erroring.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// LogResult is the shaped response for a log retrieval.
type LogResult struct {
	ID       string
	Username string
	Count    int
	Log      []domain.Exercise
}

// ExerciseService defines the activity log use-cases.
type ExerciseService interface {
	Append(ctx context.Context, input AppendExerciseInput) (*AppendExerciseResult, error)
	GetLog(ctx context.Context, query LogQuery) (*LogResult, error)
}
