package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/exercise-tracker/internal/core/domain"
	"github.com/fittrack/exercise-tracker/internal/core/ports"
)

// inputDateLayouts are the accepted forms for a client-supplied date, tried
// in order. Whatever parses is reduced to domain.DateLayout for storage.
var inputDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	domain.DateLayout,
}

// ExerciseService implements the activity log engine: append and filtered
// retrieval over a user's exercise sequence.
type ExerciseService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewExerciseService(repo ports.UserRepository, logger zerolog.Logger) *ExerciseService {
	return &ExerciseService{repo: repo, logger: logger, now: time.Now}
}

// Append records one exercise at the end of the user's sequence and returns
// the stored entry merged with the owner's identity.
//
// Duration is coerced from a JSON number or numeric string. A coerced value
// of exactly zero is rejected as missing, matching the reference behaviour.
func (s *ExerciseService) Append(ctx context.Context, input ports.AppendExerciseInput) (*ports.AppendExerciseResult, error) {
	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Description == "" || strings.TrimSpace(input.Duration) == "" {
		return nil, domain.ErrMissingFields
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(input.Duration), 64)
	if err != nil || duration == 0 {
		return nil, domain.ErrMissingFields
	}

	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, err
	}

	exercise := domain.Exercise{
		Description: input.Description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.repo.AppendExercise(ctx, user.ID, exercise); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to append exercise")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("description", exercise.Description).
		Float64("duration", exercise.Duration).
		Msg("exercise recorded")

	return &ports.AppendExerciseResult{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}, nil
}

// GetLog returns the user's exercise sequence, date-filtered when both
// bounds are present and parseable, then truncated to the head limit.
func (s *ExerciseService) GetLog(ctx context.Context, query ports.LogQuery) (*ports.LogResult, error) {
	user, err := s.repo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	log := filterByDateRange(user.Exercises, query.From, query.To)
	log = headLimit(log, query.Limit)

	return &ports.LogResult{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}, nil
}

// resolveDate defaults to today when no date is given; otherwise the input
// must parse with one of the accepted layouts.
func (s *ExerciseService) resolveDate(raw string) (string, error) {
	if raw == "" {
		return s.now().UTC().Format(domain.DateLayout), nil
	}
	t, ok := parseDate(raw)
	if !ok {
		return "", domain.ErrInvalidDate
	}
	return t.Format(domain.DateLayout), nil
}

// filterByDateRange retains entries strictly between from and to, exclusive
// on both ends, compared at date granularity. Filtering applies only when
// both bounds are present and parseable; otherwise the full sequence is
// returned. Insertion order is preserved.
func filterByDateRange(exercises []domain.Exercise, from, to string) []domain.Exercise {
	if len(exercises) == 0 {
		return []domain.Exercise{}
	}

	fromTime, fromOK := parseDate(from)
	toTime, toOK := parseDate(to)
	if !fromOK || !toOK {
		return exercises
	}

	filtered := make([]domain.Exercise, 0, len(exercises))
	for _, e := range exercises {
		t, ok := parseDate(e.Date)
		if !ok {
			continue
		}
		if t.After(fromTime) && t.Before(toTime) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// headLimit truncates to the first n entries. Non-numeric or non-positive
// limits are ignored and the sequence passes through unmodified.
func headLimit(exercises []domain.Exercise, limit string) []domain.Exercise {
	n, err := strconv.Atoi(limit)
	if err != nil || n <= 0 || n >= len(exercises) {
		return exercises
	}
	return exercises[:n]
}

// parseDate tries each accepted layout and normalises to midnight UTC so
// range comparisons work at date granularity.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range inputDateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
