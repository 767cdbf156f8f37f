package service

import (
	"context"
	"log/slog"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// SupplierServiceOptions groups dependencies for SupplierService.
type SupplierServiceOptions struct {
	API    ports.SupplierAPI
	Logger *slog.Logger
}

// SupplierService manages suppliers.
type SupplierService struct {
	crud crud[model.Supplier, model.SupplierInput]
}

// NewSupplierService constructs a new SupplierService.
func NewSupplierService(opts SupplierServiceOptions) *SupplierService {
	if opts.API == nil {
		panic("SupplierAPI is required")
	}
	return &SupplierService{crud: crud[model.Supplier, model.SupplierInput]{
		api:       opts.API,
		normalize: (*model.SupplierInput).Normalize,
		noun:      "supplier",
		loadMsg:   "Failed to load suppliers",
		logger:    loggerOrDefault(opts.Logger, "supplier_service"),
	}}
}

// List returns one page of suppliers.
func (s *SupplierService) List(ctx context.Context, creds ports.Credentials, f model.SupplierFilter) (model.ListResult[model.Supplier], error) {
	return s.crud.list(ctx, creds, f)
}

// Get returns one supplier.
func (s *SupplierService) Get(ctx context.Context, creds ports.Credentials, id model.ID) (model.Supplier, error) {
	return s.crud.get(ctx, creds, id)
}

// Create validates and stores a new supplier.
func (s *SupplierService) Create(ctx context.Context, creds ports.Credentials, in model.SupplierInput) (model.Supplier, error) {
	return s.crud.create(ctx, creds, in)
}

// Update validates and replaces a supplier's fields.
func (s *SupplierService) Update(ctx context.Context, creds ports.Credentials, id model.ID, in model.SupplierInput) (model.Supplier, error) {
	return s.crud.update(ctx, creds, id, in)
}

// Delete removes a supplier.
func (s *SupplierService) Delete(ctx context.Context, creds ports.Credentials, id model.ID) error {
	return s.crud.delete(ctx, creds, id)
}
