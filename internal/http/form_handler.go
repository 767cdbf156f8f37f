package httpx

import (
	"context"
	"net/http"

	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// FormParser reads the submitted form into T. The returned messages cover values that
// could not be read plus the advisory checks; any message keeps the request from being sent.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormSaver creates or updates the record from in.
type FormSaver[T any] func(ctx context.Context, creds ports.Credentials, in T) error

// FormRenderer re-renders the form with the given data.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter
	R        *http.Request
	Mode     FormMode
	Parser   FormParser[T]
	Save     FormSaver[T]
	Renderer FormRenderer
	// SuccessURL is where the browser goes after a successful save
	SuccessURL string
	PageMeta   PageMeta
	// ExtraData is passed to the template on every re-render, e.g. select options
	ExtraData map[string]any
	// ErrorStatus is written on validation failures when non-zero
	ErrorStatus int
}

// HandleForm runs a create or update submission: parse, check, save, then redirect with
// a flash toast, or re-render the form with what went wrong.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if !validateFormOptions(opts) {
		return
	}
	if err := opts.R.ParseForm(); err != nil {
		http.Error(opts.W, "invalid form submission", http.StatusBadRequest)
		return
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(ErrorOpts{FieldErrors: fieldErrors, StatusCode: opts.ErrorStatus}, data)
		return
	}

	err := opts.Save(opts.R.Context(), creds(opts.R), data)
	if err != nil {
		handleFormServiceError(opts, err, data)
		return
	}

	flash := "created"
	if opts.Mode == FormModeEdit {
		flash = "updated"
	}
	redirect(opts.W, opts.R, withFlash(opts.SuccessURL, flash))
}

func validateFormOptions[T any](opts FormHandlerOpts[T]) bool {
	if opts.Parser == nil || opts.Save == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return false
	}
	switch opts.Mode {
	case FormModeEdit, FormModeCreate:
		return true
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return false
	}
}

func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	switch {
	case apperrors.IsAuthorizationExpired(err):
		redirectToLogin(opts.W, opts.R)
	case apperrors.IsCanceled(err):
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
	case apperrors.IsValidation(err):
		// The advisory checks run again inside the service; the form is the same either way.
		opts.renderFormError(ErrorOpts{Err: err, StatusCode: opts.ErrorStatus}, data)
	default:
		// htmx only swaps 2xx responses, so the status is for plain form posts.
		status := 0
		if !IsHTMX(opts.R) {
			status = DetermineErrorStatus(err)
		}
		opts.renderFormError(ErrorOpts{
			Err:        err,
			Fallback:   msgSaveFailed,
			ShowToast:  true,
			StatusCode: status,
		}, data)
	}
}

// renderFormError renders the form with errors and keeps what the operator typed.
func (opts FormHandlerOpts[T]) renderFormError(eo ErrorOpts, data T) {
	extra := make(map[string]any, len(opts.ExtraData)+2)
	for k, v := range opts.ExtraData {
		extra[k] = v
	}
	extra["Mode"] = opts.Mode
	extra["Form"] = data

	eo.W, eo.R = opts.W, opts.R
	eo.PageMeta = opts.PageMeta
	eo.Data = extra
	eo.Renderer = func(w http.ResponseWriter, r *http.Request, d any) {
		m, _ := d.(map[string]any)
		opts.Renderer(w, r, m)
	}
	RenderError(eo)
}
