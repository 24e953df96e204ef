package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller has no usable session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDuplicateEmail indicates that an email is already bound to a user under another provider.
var ErrDuplicateEmail = errors.New("email already registered with a different provider")

// ErrAccountNotLinked indicates a provider account that is not linked to the user owning its email.
var ErrAccountNotLinked = errors.New("provider account is not linked to the existing user")

// ErrIdentityUnresolved indicates that no identity source produced a user identifier.
var ErrIdentityUnresolved = errors.New("user identity could not be resolved")

// ErrStoreUnavailable marks connectivity or driver failures of the document store.
// Callers may retry the whole request.
var ErrStoreUnavailable = errors.New("document store unavailable")

// ErrInvalidGuardTransition is returned when a resolved guard state is resolved again.
var ErrInvalidGuardTransition = errors.New("invalid guard state transition")

// AppError is an error carrying the HTTP status it should be surfaced with.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

func NewGatewayTimeoutError(message string) *AppError {
	return NewAppError(http.StatusGatewayTimeout, message, nil)
}

// NewAuthorizationError reports a missing or rejected session.
func NewAuthorizationError(message string, err error) *AppError {
	if err == nil {
		err = ErrUnauthorized
	}
	return NewAppError(http.StatusUnauthorized, message, err)
}

// NewValidationError reports malformed input. The cause is kept so that
// errors.Is matches both ErrValidation and the specific sentinel.
func NewValidationError(message string, cause error) *AppError {
	if cause == nil {
		return NewAppError(http.StatusBadRequest, message, ErrValidation)
	}
	return NewAppError(http.StatusBadRequest, message, errors.Join(ErrValidation, cause))
}

// NewConflictError reports a resource binding that collides with an existing one.
func NewConflictError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrDuplicate
	}
	return NewAppError(http.StatusConflict, message, cause)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewTransientStoreError reports a store failure that is safe to retry from the caller side.
func NewTransientStoreError(message string, cause error) *AppError {
	if cause == nil {
		return NewAppError(http.StatusInternalServerError, message, ErrStoreUnavailable)
	}
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrStoreUnavailable, cause))
}

// StatusFor maps an error to the HTTP status it should produce.
func StatusFor(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation), errors.Is(err, ErrIdentityUnresolved):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrAccountNotLinked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SignInError is a rejected sign-in. Code is the error code shown by the auth
// error page; Provider is the provider the attempt was made with.
type SignInError struct {
	Code     string
	Provider string
	Err      error
}

func (e *SignInError) Error() string {
	msg := "sign-in rejected: " + e.Code
	if e.Provider != "" {
		msg += " (" + e.Provider + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SignInError) Unwrap() error {
	return e.Err
}

// NewSignInError creates a SignInError.
func NewSignInError(code, provider string, err error) *SignInError {
	return &SignInError{Code: code, Provider: provider, Err: err}
}
