package errors

import (
	"fmt"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodePersistence  ErrorCode = "PERSISTENCE_ERROR"
	ErrCodeProxy        ErrorCode = "PROXY_ERROR"
	ErrCodeNotification ErrorCode = "NOTIFICATION_ERROR"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates a caller-fixable validation error
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// Persistence wraps a store failure
func Persistence(message string, err error) *AppError {
	return Wrap(ErrCodePersistence, message, err)
}

// Proxy wraps an upstream failure
func Proxy(message string, err error) *AppError {
	return Wrap(ErrCodeProxy, message, err)
}

// IsValidation checks if error is a validation error
func IsValidation(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeValidation
	}
	return false
}

// IsPersistence checks if error is a store failure
func IsPersistence(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodePersistence
	}
	return false
}

// IsProxy checks if error is an upstream failure
func IsProxy(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeProxy
	}
	return false
}

// IsUnauthorized checks if error is Unauthorized
func IsUnauthorized(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeUnauthorized
	}
	return false
}
