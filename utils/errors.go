package utils

import (
	"fmt"
	"net/http"
)

// AppError represents an application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequestError creates a 400 Bad Request error
func BadRequestError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// UnauthorizedError creates a 401 Unauthorized error
func UnauthorizedError(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, message, err)
}

// ForbiddenError creates a 403 Forbidden error
func ForbiddenError(message string, err error) *AppError {
	return NewAppError(http.StatusForbidden, message, err)
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError returns the AppError if the error is an AppError
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ProfileUpdateError is returned when a profile fetch or write fails
// during a credit mutation. It carries the amount that was being
// applied so an operator (or a retrying webhook) can see exactly what
// was lost. It is never downgraded: a silently dropped credit is a
// user-facing financial defect.
type ProfileUpdateError struct {
	UserID       string
	AttemptedCts int64
	Err          error
}

// Error implements the error interface
func (e *ProfileUpdateError) Error() string {
	return fmt.Sprintf("profile update failed for user %s (attempted %d cents): %v", e.UserID, e.AttemptedCts, e.Err)
}

// Unwrap implements the unwrap interface
func (e *ProfileUpdateError) Unwrap() error {
	return e.Err
}

// NewProfileUpdateError creates a ProfileUpdateError
func NewProfileUpdateError(userID string, attemptedCents int64, err error) *ProfileUpdateError {
	return &ProfileUpdateError{UserID: userID, AttemptedCts: attemptedCents, Err: err}
}
