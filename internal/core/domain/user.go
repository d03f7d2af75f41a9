package domain

import "errors"

var ErrInvalidUserID = errors.New("invalid user id")
var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateUsername = errors.New("username not available")
var ErrMissingFields = errors.New("description and duration are required")
var ErrInvalidDate = errors.New("invalid date")

// DateLayout is the human-readable date-only form exercises are stored in,
// e.g. "Mon Jan 02 2006". No time-of-day component is retained.
const DateLayout = "Mon Jan 02 2006"

// Exercise is a single logged activity. It has no identity of its own and
// lives only inside the owning User's sequence.
type Exercise struct {
	Description string  `json:"description" bson:"description"`
	Duration    float64 `json:"duration" bson:"duration"`
	Date        string  `json:"date" bson:"date"`
}

// User is the aggregate root: a tracked individual owning an ordered,
// append-only sequence of exercises.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Exercises []Exercise `json:"exercises"`
}
