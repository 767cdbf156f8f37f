// Package errors defines the application error kinds surfaced by the admin panel.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates the remote system rejected a duplicate or conflicting record.
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInvalidCredentials indicates the remote system rejected a login.
	ErrCodeInvalidCredentials ErrorCode = "invalid_credentials"
	// ErrCodeAuthorizationExpired indicates an authenticated call came back 401.
	ErrCodeAuthorizationExpired ErrorCode = "authorization_expired"
	// ErrCodeLoadFailed indicates a list or get call failed.
	ErrCodeLoadFailed ErrorCode = "load_failed"
	// ErrCodeSaveFailed indicates a create or update call failed.
	ErrCodeSaveFailed ErrorCode = "save_failed"
	// ErrCodeDeleteFailed indicates a delete call failed.
	ErrCodeDeleteFailed ErrorCode = "delete_failed"
	// ErrCodeUnavailable indicates a network or remote server failure.
	ErrCodeUnavailable ErrorCode = "unavailable"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// InvalidCredentialsMessage is shown verbatim on the login form.
const InvalidCredentialsMessage = "Invalid username or password."

// FieldErrors maps form field names to a human readable problem.
type FieldErrors map[string]string

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
	// Fields carries every failing field for form validation errors
	Fields FieldErrors
	// Status is the remote HTTP status when the error came from the API
	Status int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
		Fields:  FieldErrors{field: message},
	}
}

// ValidationFields creates a Validation error carrying several field errors.
// It returns nil when fields is empty so callers can return it directly.
func ValidationFields(fields FieldErrors) *AppError {
	if len(fields) == 0 {
		return nil
	}
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "Please correct the highlighted fields.",
		Fields:  maps.Clone(fields),
	}
}

// InvalidCredentials creates the login rejection error.
func InvalidCredentials(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCredentials,
		Message: InvalidCredentialsMessage,
		Cause:   cause,
	}
}

// AuthorizationExpired creates the error returned for a 401 on an authenticated call.
func AuthorizationExpired(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeAuthorizationExpired,
		Message: "Your session has expired. Please sign in again.",
		Cause:   cause,
		Status:  401,
	}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// MessageTemplate describes a lazily formatted error message used with Wrapf.
type MessageTemplate struct {
	format string
	args   []any
}

// Messagef creates a lazily formatted message template for Wrapf.
func Messagef(format string, args ...any) MessageTemplate {
	return MessageTemplate{
		format: format,
		args:   args,
	}
}

func (mt MessageTemplate) String() string {
	if len(mt.args) == 0 {
		return mt.format
	}
	return fmt.Sprintf(mt.format, mt.args...)
}

// WrapTemplate wraps an existing error with an AppError using a preconstructed message template.
func WrapTemplate(err error, code ErrorCode, template MessageTemplate) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: template.String(),
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return WrapTemplate(err, code, Messagef(format, args...))
}

// Reclassify wraps err under code unless it already carries one of the passthrough codes,
// in which case it is returned unchanged.
func Reclassify(err error, code ErrorCode, message string, passthrough ...ErrorCode) error {
	if err == nil {
		return nil
	}
	current := GetCode(err)
	for _, c := range passthrough {
		if current == c {
			return err
		}
	}
	wrapped := Wrap(err, code, message)
	wrapped.Status = GetStatus(err)
	return wrapped
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool {
	return isCode(err, ErrCodeConflict)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsInvalidCredentials checks if an error is a rejected login.
func IsInvalidCredentials(err error) bool {
	return isCode(err, ErrCodeInvalidCredentials)
}

// IsAuthorizationExpired checks if an error came from a 401 on an authenticated call.
func IsAuthorizationExpired(err error) bool {
	return isCode(err, ErrCodeAuthorizationExpired)
}

// IsUnavailable checks if an error is a network or remote server failure.
func IsUnavailable(err error) bool {
	return isCode(err, ErrCodeUnavailable)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool {
	return isCode(err, ErrCodeTimeout)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
// The outermost AppError wins.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// GetFields returns the field errors attached to a Validation error, if any.
func GetFields(err error) FieldErrors {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}

// GetStatus returns the remote HTTP status recorded on the first AppError in the chain that has one.
func GetStatus(err error) int {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			return 0
		}
		if appErr.Status != 0 {
			return appErr.Status
		}
		err = appErr.Cause
	}
	return 0
}

// UserMessage returns the message to show an operator for err, falling back to def.
func UserMessage(err error, def string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return def
}
