package services

import "errors"

// Error kinds. Every client-facing service error wraps exactly one of these,
// so callers map them to a status with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrMissingCredentials = newError(ErrValidation, "email and password are required")
	ErrMissingFields      = newError(ErrValidation, "email, password and name are required")
	ErrInvalidRole        = newError(ErrValidation, "invalid role")
	ErrMissingProfileKeys = newError(ErrValidation, "id and email are required")
	ErrMissingCreator     = newError(ErrValidation, "createdBy is required")
	ErrMissingCommentText = newError(ErrValidation, "comment text is required")
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid credentials")
	ErrNotAuthor          = newError(ErrForbidden, "only the author can change this")
	ErrNotEventCreator    = newError(ErrForbidden, "only the creator can modify this event")
	ErrUserNotFound       = newError(ErrNotFound, "user not found")
	ErrPostNotFound       = newError(ErrNotFound, "post not found")
	ErrCommentNotFound    = newError(ErrNotFound, "comment not found")
	ErrEventNotFound      = newError(ErrNotFound, "event not found")
	ErrEmailTaken         = newError(ErrConflict, "an account with this email already exists")
)

// serviceError carries a message safe to show to clients.
type serviceError struct {
	kind    error
	message string
}

func newError(kind error, message string) error {
	return &serviceError{kind: kind, message: message}
}

func (e *serviceError) Error() string { return e.message }

func (e *serviceError) Unwrap() error { return e.kind }
