package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/fittrack/exercise-tracker/internal/core/domain"
	"github.com/fittrack/exercise-tracker/internal/core/ports"
)

// UserService implements the user directory: list, create, reset, resolve.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns every user record verbatim, in store order.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Create registers a new user with an empty exercise sequence. The duplicate
// lookup and the insert are two store calls; the unique index on username
// catches the rare lost race and reports the same error.
func (s *UserService) Create(ctx context.Context, username string) (*ports.UserIdentity, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUsername
	}

	user, err := s.repo.Insert(ctx, username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", username).Msg("user created")
	return &ports.UserIdentity{ID: user.ID, Username: user.Username}, nil
}

// Reset deletes all users unconditionally.
func (s *UserService) Reset(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to reset users")
		return 0, err
	}
	s.logger.Warn().Int64("deleted", deleted).Msg("users collection reset")
	return deleted, nil
}

// Resolve validates the identifier and loads the user's identity. The
// repository rejects malformed ids with domain.ErrInvalidUserID before
// touching the store.
func (s *UserService) Resolve(ctx context.Context, id string) (*ports.UserIdentity, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.UserIdentity{ID: user.ID, Username: user.Username}, nil
}
