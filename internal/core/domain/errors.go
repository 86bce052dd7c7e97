package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// ErrorKind classifies authentication failures for the transport layer.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindRemote             ErrorKind = "remote"
	KindNotFound           ErrorKind = "not_found"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindInFlight           ErrorKind = "in_flight"
	KindStorage            ErrorKind = "storage"
)

// User-facing messages reported by the auth manager.
const (
	MsgCredentialsRequired = "credentials required"
	MsgLoginFailed         = "login failed"
	MsgUserNotFound        = "user not found"
	MsgSignupFieldsMissing = "name, email, and password are required"
	MsgAccountCreation     = "account creation failed"
	MsgInFlight            = "an authentication request is already in progress"
	MsgInvalidCredentials  = "invalid credentials"
	MsgSessionSave         = "session could not be saved"
)

// AuthError is returned by every failing auth manager operation. Message is
// safe to show to the user; Err carries the underlying cause, if any.
type AuthError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// NewAuthError builds an AuthError of the given kind.
func NewAuthError(kind ErrorKind, msg string, cause error) *AuthError {
	return &AuthError{Kind: kind, Message: msg, Err: cause}
}

// IsKind reports whether err is an AuthError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *AuthError
	return errors.As(err, &ae) && ae.Kind == kind
}
