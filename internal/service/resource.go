package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// Messages shown to the operator when a remote call fails.
const (
	MsgSaveFailed   = "Save failed"
	MsgDeleteFailed = "Delete failed"
	MsgLoadFailed   = "Failed to load"
)

// validator is implemented by every create/update payload.
type validator interface {
	Validate() map[string]string
}

// crud is the list/get/create/update/delete flow shared by every resource family.
// Payloads are normalized and validated before any request is sent; remote failures are
// reclassified into LoadFailed, SaveFailed or DeleteFailed.
type crud[T any, In validator] struct {
	api       ports.ResourceAPI[T, In]
	normalize func(*In)
	noun      string
	loadMsg   string
	logger    *slog.Logger
}

func (c crud[T, In]) list(ctx context.Context, creds ports.Credentials, q model.Querier) (model.ListResult[T], error) {
	res, err := c.api.List(ctx, creds, q.Values())
	if err != nil {
		return model.ListResult[T]{}, loadFailed(err, c.loadMsg)
	}
	return res, nil
}

func (c crud[T, In]) get(ctx context.Context, creds ports.Credentials, id model.ID) (T, error) {
	var zero T
	if id.IsZero() {
		return zero, apperrors.NotFoundf("%s not found", c.noun)
	}
	item, err := c.api.Get(ctx, creds, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return zero, err
		}
		return zero, loadFailed(err, c.loadMsg)
	}
	return item, nil
}

// prepare normalizes in and runs the advisory checks.
func (c crud[T, In]) prepare(in *In) error {
	if c.normalize != nil {
		c.normalize(in)
	}
	if fields := (*in).Validate(); len(fields) > 0 {
		return apperrors.ValidationFields(fields)
	}
	return nil
}

func (c crud[T, In]) create(ctx context.Context, creds ports.Credentials, in In) (T, error) {
	var zero T
	if err := c.prepare(&in); err != nil {
		return zero, err
	}
	item, err := c.api.Create(ctx, creds, in)
	if err != nil {
		return zero, saveFailed(err)
	}
	c.logger.InfoContext(ctx, c.noun+" created")
	return item, nil
}

func (c crud[T, In]) update(ctx context.Context, creds ports.Credentials, id model.ID, in In) (T, error) {
	var zero T
	if id.IsZero() {
		return zero, apperrors.NotFoundf("%s not found", c.noun)
	}
	if err := c.prepare(&in); err != nil {
		return zero, err
	}
	item, err := c.api.Update(ctx, creds, id, in)
	if err != nil {
		return zero, saveFailed(err)
	}
	c.logger.InfoContext(ctx, c.noun+" updated", "id", id)
	return item, nil
}

func (c crud[T, In]) delete(ctx context.Context, creds ports.Credentials, id model.ID) error {
	if id.IsZero() {
		return apperrors.NotFoundf("%s not found", c.noun)
	}
	if err := c.api.Delete(ctx, creds, id); err != nil {
		return reclassify(err, apperrors.ErrCodeDeleteFailed, MsgDeleteFailed)
	}
	c.logger.InfoContext(ctx, c.noun+" deleted", "id", id)
	return nil
}

func loadFailed(err error, message string) error {
	return reclassify(err, apperrors.ErrCodeLoadFailed, message)
}

func saveFailed(err error) error {
	return reclassify(err, apperrors.ErrCodeSaveFailed, MsgSaveFailed)
}

// reclassify maps a remote failure onto an operation-level code. A 401 and a canceled
// request keep their own codes. The API's own reason is appended for conflicts and
// rejected payloads so the operator can act on it.
func reclassify(err error, code apperrors.ErrorCode, message string) error {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeAuthorizationExpired, apperrors.ErrCodeCanceled:
		return err
	case apperrors.ErrCodeConflict, apperrors.ErrCodeValidation:
		if detail := apperrors.UserMessage(err, ""); detail != "" {
			message = fmt.Sprintf("%s: %s", message, detail)
		}
	}
	return apperrors.Reclassify(err, code, message)
}

func loggerOrDefault(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", component)
}
