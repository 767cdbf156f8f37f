package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
)

const (
	msgSaveFailed     = service.MsgSaveFailed
	msgTimedOut       = "Request timed out. Please try again."
	msgDuplicateEntry = "This value already exists. Please choose a different one."
)

// ErrorRenderer renders a page or form with the given data.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is the failure to describe (optional when FieldErrors is set)
	Err error
	// FieldErrors are per-field messages (field name → message)
	FieldErrors map[string]string
	Renderer    ErrorRenderer
	PageMeta    PageMeta
	// Data is merged into the template data, e.g. the submitted form
	Data map[string]any
	// StatusCode is written before rendering when non-zero
	StatusCode int
	// Fallback is the message for errors that carry none, e.g. "Save failed"
	Fallback string
	// ShowToast also reports the general message as an error toast
	ShowToast bool
}

// DetermineErrorStatus returns the status to answer err with, or 0 for the default
// (200, so htmx swaps the re-rendered form in).
func DetermineErrorStatus(err error) int {
	switch {
	case err == nil:
		return 0
	case apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return 0
	}
}

// RenderError re-renders a page with an inline error. Validation errors coming back from
// the API are spread over the fields they name.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)
	general := processError(opts.Err, &opts.FieldErrors, opts.Fallback)

	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}
	if general != "" {
		builder.WithError(general)
	} else if len(opts.FieldErrors) > 0 {
		builder.WithError(errMsgFixBelow)
	}
	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && general != "" {
		toast := general
		if opts.Fallback != "" {
			toast = opts.Fallback
		}
		triggerToast(opts.W, toast, "error")
	}
	if opts.StatusCode != 0 {
		opts.W.Header().Set("Content-Type", "text/html; charset=utf-8")
		opts.W.WriteHeader(opts.StatusCode)
	}
	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError returns the general message for err and moves any field errors it carries
// into fieldErrors. Returns "" if err is nil.
func processError(err error, fieldErrors *map[string]string, fallback string) string {
	if err == nil {
		return ""
	}
	if fallback == "" {
		fallback = "An error occurred. Please try again."
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || apperrors.IsTimeout(err):
		return msgTimedOut
	case errors.Is(err, context.Canceled) || apperrors.IsCanceled(err):
		return "Request was canceled."
	case apperrors.IsValidation(err):
		if fields := apperrors.GetFields(err); len(fields) > 0 {
			addFieldErrors(fieldErrors, fields)
			return apperrors.UserMessage(err, errMsgFixBelow)
		}
		if field := apperrors.GetField(err); field != "" {
			addFieldErrors(fieldErrors, map[string]string{field: apperrors.UserMessage(err, fallback)})
			return errMsgFixBelow
		}
		return apperrors.UserMessage(err, fallback)
	case apperrors.IsConflict(err):
		if field := apperrors.GetField(err); field != "" {
			addFieldErrors(fieldErrors, map[string]string{field: msgDuplicateEntry})
			return errMsgFixBelow
		}
		return apperrors.UserMessage(err, msgDuplicateEntry)
	default:
		return apperrors.UserMessage(err, fallback)
	}
}

func addFieldErrors(dst *map[string]string, src map[string]string) {
	if dst == nil {
		return
	}
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		if _, exists := (*dst)[k]; !exists {
			(*dst)[k] = v
		}
	}
}
