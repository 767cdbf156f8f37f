package service

import (
	"context"
	"log/slog"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// AttributeServiceOptions groups dependencies for AttributeService.
type AttributeServiceOptions struct {
	API    ports.AttributeAPI
	Logger *slog.Logger
}

// AttributeService manages the six reference-data collections through one code path.
type AttributeService struct {
	api    ports.AttributeAPI
	logger *slog.Logger
}

// NewAttributeService constructs a new AttributeService.
func NewAttributeService(opts AttributeServiceOptions) *AttributeService {
	if opts.API == nil {
		panic("AttributeAPI is required")
	}
	return &AttributeService{api: opts.API, logger: loggerOrDefault(opts.Logger, "attribute_service")}
}

func (s *AttributeService) collection(t model.AttributeType) (crud[model.Attribute, model.AttributeInput], error) {
	if !t.Valid() {
		return crud[model.Attribute, model.AttributeInput]{}, apperrors.NotFoundf("unknown attribute type %q", t)
	}
	api := s.api.Collection(t)
	if api == nil {
		return crud[model.Attribute, model.AttributeInput]{}, apperrors.NotFoundf("unknown attribute type %q", t)
	}
	return crud[model.Attribute, model.AttributeInput]{
		api:       api,
		normalize: (*model.AttributeInput).Normalize,
		noun:      t.Singular(),
		loadMsg:   MsgLoadFailed,
		logger:    s.logger.With("attribute_type", t),
	}, nil
}

// List returns one page of the collection.
func (s *AttributeService) List(ctx context.Context, creds ports.Credentials, t model.AttributeType, f model.AttributeFilter) (model.ListResult[model.Attribute], error) {
	c, err := s.collection(t)
	if err != nil {
		return model.ListResult[model.Attribute]{}, err
	}
	return c.list(ctx, creds, f)
}

// Get returns one entry.
func (s *AttributeService) Get(ctx context.Context, creds ports.Credentials, t model.AttributeType, id model.ID) (model.Attribute, error) {
	c, err := s.collection(t)
	if err != nil {
		return model.Attribute{}, err
	}
	return c.get(ctx, creds, id)
}

// Create validates and stores a new entry.
func (s *AttributeService) Create(ctx context.Context, creds ports.Credentials, t model.AttributeType, in model.AttributeInput) (model.Attribute, error) {
	c, err := s.collection(t)
	if err != nil {
		return model.Attribute{}, err
	}
	return c.create(ctx, creds, in)
}

// Update validates and replaces an entry's fields.
func (s *AttributeService) Update(ctx context.Context, creds ports.Credentials, t model.AttributeType, id model.ID, in model.AttributeInput) (model.Attribute, error) {
	c, err := s.collection(t)
	if err != nil {
		return model.Attribute{}, err
	}
	return c.update(ctx, creds, id, in)
}

// Delete removes an entry.
func (s *AttributeService) Delete(ctx context.Context, creds ports.Credentials, t model.AttributeType, id model.ID) error {
	c, err := s.collection(t)
	if err != nil {
		return err
	}
	return c.delete(ctx, creds, id)
}
