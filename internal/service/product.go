package service

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

// ProductLookups are the resources the product form reads its select options from.
type ProductLookups struct {
	Attributes ports.AttributeAPI
	Suppliers  ports.SupplierAPI
}

// ProductServiceOptions groups dependencies for ProductService.
type ProductServiceOptions struct {
	API     ports.ProductAPI
	Lookups ProductLookups
	Logger  *slog.Logger
}

// ProductService manages products and their variations.
type ProductService struct {
	crud    crud[model.Product, model.ProductInput]
	lookups ProductLookups
}

// NewProductService constructs a new ProductService.
func NewProductService(opts ProductServiceOptions) *ProductService {
	if opts.API == nil {
		panic("ProductAPI is required")
	}
	return &ProductService{
		crud: crud[model.Product, model.ProductInput]{
			api:       opts.API,
			normalize: (*model.ProductInput).Normalize,
			noun:      "product",
			loadMsg:   "Failed to load products",
			logger:    loggerOrDefault(opts.Logger, "product_service"),
		},
		lookups: opts.Lookups,
	}
}

// List returns one page of products.
func (s *ProductService) List(ctx context.Context, creds ports.Credentials, f model.ProductFilter) (model.ListResult[model.Product], error) {
	return s.crud.list(ctx, creds, f)
}

// Get returns one product with its variations.
func (s *ProductService) Get(ctx context.Context, creds ports.Credentials, id model.ID) (model.Product, error) {
	c := s.crud
	c.loadMsg = "Failed to load product"
	return c.get(ctx, creds, id)
}

// Create validates and stores a new product.
func (s *ProductService) Create(ctx context.Context, creds ports.Credentials, in model.ProductInput) (model.Product, error) {
	return s.crud.create(ctx, creds, in)
}

// Update validates and replaces a product. The variation list is replaced wholesale.
func (s *ProductService) Update(ctx context.Context, creds ports.Credentials, id model.ID, in model.ProductInput) (model.Product, error) {
	return s.crud.update(ctx, creds, id, in)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, creds ports.Credentials, id model.ID) error {
	return s.crud.delete(ctx, creds, id)
}

// FormOptions holds the select options of the product form.
type FormOptions struct {
	Attributes map[model.AttributeType][]model.Attribute
	Suppliers  []model.Supplier
}

// Options returns the entries of one attribute collection.
func (o FormOptions) Options(t model.AttributeType) []model.Attribute {
	return o.Attributes[t]
}

// FormOptions loads every attribute collection and the suppliers concurrently. The first
// failure cancels the rest.
func (s *ProductService) FormOptions(ctx context.Context, creds ports.Credentials) (FormOptions, error) {
	out := FormOptions{Attributes: make(map[model.AttributeType][]model.Attribute, len(model.AttributeTypes))}
	var mu sync.Mutex
	unpaged := model.Unpaged().Values()

	g, gctx := errgroup.WithContext(ctx)
	if s.lookups.Attributes != nil {
		for _, t := range model.AttributeTypes {
			api := s.lookups.Attributes.Collection(t)
			if api == nil {
				continue
			}
			g.Go(func() error {
				res, err := api.List(gctx, creds, unpaged)
				if err != nil {
					return loadFailed(err, "Failed to load "+t.Label())
				}
				mu.Lock()
				out.Attributes[t] = res.Items
				mu.Unlock()
				return nil
			})
		}
	}
	if s.lookups.Suppliers != nil {
		g.Go(func() error {
			res, err := s.lookups.Suppliers.List(gctx, creds, unpaged)
			if err != nil {
				return loadFailed(err, "Failed to load suppliers")
			}
			mu.Lock()
			out.Suppliers = res.Items
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FormOptions{}, err
	}
	return out, nil
}
