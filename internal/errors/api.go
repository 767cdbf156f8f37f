package errors

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// FromStatus maps a non-2xx response from the BagBank API to an AppError.
// message is the detail extracted from the response body, if any.
//
//   - 401 → AuthorizationExpired
//   - 404 → NotFound
//   - 409 → Conflict
//   - 400, 422 → Validation
//   - 5xx and anything else → Unavailable
func FromStatus(status int, message string) *AppError {
	message = strings.TrimSpace(message)
	appErr := &AppError{Status: status, Message: message}

	switch {
	case status == http.StatusUnauthorized:
		appErr = AuthorizationExpired(nil)
		if message != "" {
			appErr.Cause = errors.New(message)
		}
		return appErr
	case status == http.StatusNotFound:
		appErr.Code = ErrCodeNotFound
		if message == "" {
			appErr.Message = "Resource not found"
		}
	case status == http.StatusConflict:
		appErr.Code = ErrCodeConflict
		if message == "" {
			appErr.Message = "This value already exists. Please choose a different one."
		}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		appErr.Code = ErrCodeValidation
		if message == "" {
			appErr.Message = "Invalid data. Please check your input."
		}
	default:
		appErr.Code = ErrCodeUnavailable
		if message == "" {
			appErr.Message = http.StatusText(status)
		}
		if appErr.Message == "" {
			appErr.Message = "The BagBank API returned an unexpected response."
		}
	}
	return appErr
}

// FromTransport maps an error returned by http.Client.Do to an AppError.
// Errors that already are AppErrors are returned unchanged.
func FromTransport(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}

	return &AppError{
		Code:    ErrCodeUnavailable,
		Message: "The BagBank API is unreachable.",
		Cause:   err,
	}
}
