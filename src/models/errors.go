package models

import "errors"

// Domain-level sentinel errors for business logic
// These errors should not contain HTTP-specific information

var (
	// ErrMissingParameter indicates that a required request parameter is absent or empty
	ErrMissingParameter = errors.New("missing parameter")

	// ErrUserAlreadyExists indicates that a user with the given id is already registered
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound indicates that a user with the given id does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNoSessions indicates that no sessions exist for the given user
	ErrNoSessions = errors.New("no sessions found for user")

	// ErrLoginAfterLogout indicates that a session's login time is later than its logout time
	ErrLoginAfterLogout = errors.New("login time is later than logout time")

	// ErrNegativeDays indicates that an inactivity window was given as a negative day count
	ErrNegativeDays = errors.New("the number of days must be non-negative")
)

// ParseError wraps a parser failure (date, month or number) so the adapter can
// surface the underlying parser's diagnostic verbatim.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps err into a ParseError.
func NewParseError(err error) *ParseError {
	return &ParseError{Err: err}
}
