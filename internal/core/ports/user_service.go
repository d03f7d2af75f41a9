package ports

import (
	"context"

	"github.com/fittrack/exercise-tracker/internal/core/domain"
)

// UserIdentity is the minimal view of a user returned by Create and Resolve.
type UserIdentity struct {
	ID       string
	Username string
}

// UserService defines the user directory use-cases.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, username string) (*UserIdentity, error)
	// Reset deletes all users unconditionally and returns the count removed.
	Reset(ctx context.Context) (int64, error)
	// Resolve validates the identifier and loads the user's identity. It is
	// the shared precondition for every user-scoped operation.
	Resolve(ctx context.Context, id string) (*UserIdentity, error)
}
