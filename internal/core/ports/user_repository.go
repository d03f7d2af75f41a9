package ports

import (
	"context"

	"github.com/fittrack/exercise-tracker/internal/core/domain"
)

// UserRepository defines persistence operations over the users collection.
// FindByID and AppendExercise must return domain.ErrInvalidUserID when the
// identifier is not well-formed for the underlying store, before any query
// is issued.
type UserRepository interface {
	// Insert creates a user with an empty exercise sequence. A username
	// collision (application race lost to the unique index) is reported as
	// domain.ErrDuplicateUsername.
	Insert(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns every user record verbatim, in store order.
	List(ctx context.Context) ([]*domain.User, error)
	// DeleteAll removes every user record and returns the count deleted.
	DeleteAll(ctx context.Context) (int64, error)
	// AppendExercise atomically pushes the exercise onto the end of the
	// user's sequence.
	AppendExercise(ctx context.Context, id string, exercise domain.Exercise) error
}
